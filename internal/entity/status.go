package entity

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

func (that Status) IsFinished() bool {
	return that == StatusWon || that == StatusDraw
}
