package models

// Parameter is a single named value bound to a batch command. Parameters are
// unique by name within one command; setting a parameter with an existing
// name replaces the previous value.
type Parameter struct {
	// Name identifies the parameter within its command.
	Name string `json:"name"`

	// Value is the raw value passed to the driver.
	Value any `json:"value"`
}
