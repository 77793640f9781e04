package config

// Specification of requested output type.
// ENUM(css, list)
type OutputFmt int

// Ext returns file extension used for the given output type.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtCss:
		return ".css"
	case OutputFmtList:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
