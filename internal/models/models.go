package models

// Role describes which side of a lending relationship a record represents.
type Role string

const (
	RoleBorrowed   Role = "borrowed"
	RoleLending    Role = "lending"
	RoleRequesting Role = "requesting"
)

// Status is the lifecycle state of a lending relationship.
type Status string

const (
	StatusRequested Status = "requested"
	StatusApproved  Status = "approved"
	StatusCurrent   Status = "current"
	StatusCompleted Status = "completed"
)

// Direction indicates whether an item is going to or coming from the counterparty.
type Direction string

const (
	DirectionTo   Direction = "to"
	DirectionFrom Direction = "from"
)

// Person is a lightweight counterparty reference in an activity relationship.
type Person struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Owner describes the lender of a catalog product.
type Owner struct {
	Name          string `json:"name"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
	Phone         string `json:"phone,omitempty"`
	MutualFriends int    `json:"mutualFriends,omitempty"`
}

// Product is an immutable catalog item seeded from fixtures.
type Product struct {
	ID                  string   `json:"id"`
	Brand               string   `json:"brand"`
	Title               string   `json:"title"`
	Category            string   `json:"category,omitempty"`
	Material            string   `json:"material,omitempty"`
	Color               string   `json:"color,omitempty"`
	Occasion            string   `json:"occasion,omitempty"`
	Sizes               []string `json:"sizes,omitempty"`
	SizeLabel           string   `json:"sizeLabel,omitempty"`
	Description         string   `json:"description,omitempty"`
	WashingInstructions string   `json:"washingInstructions,omitempty"`
	Price               float64  `json:"price,omitempty"`
	DistanceKM          float64  `json:"distanceKm,omitempty"`
	PopularityScore     float64  `json:"popularityScore,omitempty"`
	ImageURL            string   `json:"imageUrl,omitempty"`
	Owner               *Owner   `json:"owner,omitempty"`
}

// ActivityInfo describes the lending relationship attached to a record.
// A nil ActivityInfo on a record means "no active relationship" and is the
// terminal state reached by deny and return.
type ActivityInfo struct {
	Role           Role      `json:"role"`
	Direction      Direction `json:"direction,omitempty"`
	Person         Person    `json:"person"`
	Status         Status    `json:"status"`
	DueDate        string    `json:"dueDate,omitempty"`
	RequestedDate  string    `json:"requestedDate,omitempty"`
	PickupLocation string    `json:"pickupLocation,omitempty"`
}

// ActivityRecord wraps a product payload plus its lending relationship.
// Borrow requests use the same shape with Role fixed to requesting.
type ActivityRecord struct {
	Product
	Activity *ActivityInfo `json:"activity,omitempty"`
}

// Listing is an item the current user has put up for lending. IsLent is
// derived from the activity store, never stored authoritatively.
type Listing struct {
	ID                  string `json:"id"`
	ImageURL            string `json:"imageUrl"`
	Alt                 string `json:"alt,omitempty"`
	Title               string `json:"title"`
	Brand               string `json:"brand,omitempty"`
	SizeLabel           string `json:"sizeLabel,omitempty"`
	Material            string `json:"material,omitempty"`
	Color               string `json:"color,omitempty"`
	Occasion            string `json:"occasion,omitempty"`
	Description         string `json:"description,omitempty"`
	WashingInstructions string `json:"washingInstructions,omitempty"`
	IsLent              bool   `json:"isLent"`
}

// User is a fixture-seeded contact that can be added as a friend.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	IsFriend  bool   `json:"isFriend"`
}

// ProfileStats is a flat counter record recomputed from the other entities.
type ProfileStats struct {
	Items   int `json:"items"`
	Friends int `json:"friends"`
	Borrows int `json:"borrows"`
	Lends   int `json:"lends"`
}

// Profile is the current user's profile page payload.
type Profile struct {
	Name      string       `json:"name"`
	Location  string       `json:"location,omitempty"`
	AvatarURL string       `json:"avatarUrl,omitempty"`
	Bio       string       `json:"bio,omitempty"`
	Stats     ProfileStats `json:"stats"`
	Listings  []Listing    `json:"listings"`
}
