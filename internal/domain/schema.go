package domain

// Fixed literals of the structured output schemas. After repair, Type fields
// hold exactly one of these values.
const (
	TypeTopic    = "TOPIC"
	TypeSubtopic = "SUBTOPIC"
	TypeQA       = "QA"
	TypeStudy    = "STUDY"

	// ResourceName names placeholder topics synthesized when the model
	// output carried no usable topic structure.
	ResourceName = "RESOURCE"
)

// Subtopic is one learnable unit inside a Topic. Name and Content are
// non-empty after repair.
type Subtopic struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Topic is a roadmap node. Type is always TypeTopic after repair and
// Subtopics is never nil.
type Topic struct {
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Subtopics []Subtopic `json:"subtopics"`
}

// Item is a single QA or STUDY learning item. Content is non-empty after
// repair.
type Item struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
