package note

// Note is the display record projected from a raw stored document
type Note struct {
	Id        string `json:"id" example:"626f5d59f9c4a3b3a4a1d7e1"`
	Title     string `json:"title" example:"Groceries"`
	Desc      string `json:"desc" example:"Milk, eggs"`
	Important bool   `json:"important" example:"false"`
}

// Event is the envelope consumed from the messaging topic
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

const listKey = "notes.all"
