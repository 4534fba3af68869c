package events

type ToyAdded struct {
	ToyID string `json:"toy_id"`
	Slug  string `json:"slug"`
}

type ToyUpdated struct {
	ToyID string `json:"toy_id"`
}

type ToyReplaced struct {
	ToyID   string `json:"toy_id"`
	Created bool   `json:"created"`
}

type ToyDeleted struct {
	ToyID string `json:"toy_id"`
}

type CategoryAdded struct {
	CategoryID uint   `json:"category_id"`
	Slug       string `json:"slug"`
}
