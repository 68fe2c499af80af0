package model

// DisplayState represents what the quote label currently shows
type DisplayState string

const (
	// DisplayStateInitial means the label still holds the startup placeholder
	DisplayStateInitial DisplayState = "Initial"

	// DisplayStateDisplaying means the label holds a formatted reading
	DisplayStateDisplaying DisplayState = "Displaying"
)

// String returns the string representation of DisplayState
func (ds DisplayState) String() string {
	return string(ds)
}

// HasReading returns true once at least one fetch has succeeded
func (ds DisplayState) HasReading() bool {
	return ds == DisplayStateDisplaying
}

// Next returns the state after a refresh. A failed refresh is only a dialog
// overlay, so the state is kept.
func (ds DisplayState) Next(fetchSucceeded bool) DisplayState {
	if fetchSucceeded {
		return DisplayStateDisplaying
	}
	return ds
}
