package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashgrove/swordvault/internal/vaultlog"
	"github.com/ashgrove/swordvault/pkg/vault"
)

func init() {
	rootCmd.AddCommand(newOpenCmd())
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <file> <master-key>",
		Short: "Open a swordvault container and list its contents",
		Long: `The open command parses <file>, unlocks it with the given master key, and
prints the record tree. Record secrets are listed by ciphertext size
only; swordctl has no command that decrypts them.

Example:
  swordctl open vault.swd "correct horse battery staple"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(args[0], args[1])
		},
	}
}

func runOpen(path, masterKey string) error {
	vaultlog.Debug("opening container", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	c, err := vault.ParseBytes(data, vault.DefaultCiphers(), vault.DefaultHashes())
	if err != nil {
		vaultlog.Error("failed to parse container", "path", path, "err", err)
		return fmt.Errorf("parse %s: %w", path, err)
	}

	ok, err := c.Unlock([]byte(masterKey))
	if err != nil {
		return fmt.Errorf("unlock %s: %w", path, err)
	}
	if !ok {
		vaultlog.Warn("unlock failed: wrong master key", "path", path)
		return fmt.Errorf("wrong master key for %s", path)
	}

	printVerbose("unlocked %s (version %d)\n", path, c.Header().Version())
	printCollection(c.Root(), 0)
	return nil
}

func printCollection(coll *vault.Collection, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%s%s/\n", indent, coll.Label())
	for _, rec := range coll.Records() {
		fmt.Printf("%s  %s (%d bytes encrypted)\n", indent, rec.Label(), len(rec.Secret()))
	}
	for _, child := range coll.Children() {
		printCollection(child, depth+1)
	}
}
