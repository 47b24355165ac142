package qlog

// category is the qlog event category.
type category uint8

const (
	categoryQueue category = iota
)

func (c category) String() string {
	switch c {
	case categoryQueue:
		return "queue"
	default:
		panic("unknown category")
	}
}
