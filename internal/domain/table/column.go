package table

// Column is one CSV column as read from the header line
type Column struct {
	Header   string
	Selected bool // selected columns pass through to the output
}
