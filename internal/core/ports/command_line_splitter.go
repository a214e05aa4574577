package ports

// CommandLineSplitter turns a typed command line into argv.
type CommandLineSplitter interface {
	Split(line string) ([]string, error)
}
