package export

// Dataset defines tabular export content. Rows are positional and must
// match the header count.
type Dataset struct {
	Title   string
	Headers []string
	Rows    [][]string
}
