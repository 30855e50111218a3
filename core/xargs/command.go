package xargs

// BuildArgv concatenates the fixed command template with one batch of
// harvested tokens. Tokens enter the vector verbatim; no quoting or
// expansion happens here.
func BuildArgv(template, batch []string) []string {
	argv := make([]string, 0, len(template)+len(batch))
	argv = append(argv, template...)
	return append(argv, batch...)
}
