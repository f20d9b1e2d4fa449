package tui

type state int

const (
	runningState state = iota
	errorState
	sectionsState
	checksState
)
