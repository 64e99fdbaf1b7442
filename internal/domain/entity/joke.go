package entity

// Joke is a single item of the protected resource collection.
type Joke struct {
	ID   string `json:"id"`
	Joke string `json:"joke"`
}
