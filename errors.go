package bidtable

// NoBidFound - Custom error to inform that no bid was found for a given identifier.
// It doubles as the "not found" result of Search, a zero Bid together with this error
// is distinguishable from any stored bid since stored identifiers are non-empty.
type NoBidFound struct {
	msg string
}

// Error - Used to notify that no bid was found
func (E NoBidFound) Error() string {
	if E.msg == "" {
		return "no bid found"
	}
	return E.msg
}
