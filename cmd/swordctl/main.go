// Command swordctl creates and opens swordvault containers from the
// command line. It is a thin wrapper over pkg/vault, internal/parser,
// and internal/serializer: every byte layout decision lives in those
// packages, not here.
package main

func main() {
	execute()
}
