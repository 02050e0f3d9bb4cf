package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashgrove/swordvault/internal/vaultlog"
	"github.com/ashgrove/swordvault/pkg/vault"
)

var (
	newRootLabel string
	newHashName  string
	newCipher    string
	newSaltLen   int
)

func init() {
	cmd := newNewCmd()
	cmd.Flags().StringVar(&newRootLabel, "root-label", "root", "Label for the root collection")
	cmd.Flags().StringVar(&newHashName, "hash", "sha3-256", "Registry name of the hash used for unlock and key derivation")
	cmd.Flags().StringVar(&newCipher, "cipher", "aes-gcm", "Registry name of the cipher used to protect record secrets")
	cmd.Flags().IntVar(&newSaltLen, "salt-len", 16, "Salt length in bytes for both the master-key and key salts")
	rootCmd.AddCommand(cmd)
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <file> <master-key>",
		Short: "Create an empty swordvault container",
		Long: `The new command creates a fresh, empty container locked under the given
master key and writes it to <file>.

Example:
  swordctl new vault.swd "correct horse battery staple"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args[0], args[1])
		},
	}
}

func runNew(path, masterKey string) error {
	vaultlog.Info("creating container", "path", path, "hash", newHashName, "cipher", newCipher)

	masterKeySalt := make([]byte, newSaltLen)
	if _, err := rand.Read(masterKeySalt); err != nil {
		return fmt.Errorf("generate master-key salt: %w", err)
	}
	keySalt := make([]byte, newSaltLen)
	if _, err := rand.Read(keySalt); err != nil {
		return fmt.Errorf("generate key salt: %w", err)
	}

	hashes := vault.DefaultHashes()
	ciphers := vault.DefaultCiphers()

	c, err := vault.NewContainerV1(newRootLabel, []byte(masterKey), masterKeySalt, keySalt, newHashName, newCipher, hashes, ciphers)
	if err != nil {
		return fmt.Errorf("build container: %w", err)
	}

	out, err := vault.ToBytes(c)
	if err != nil {
		return fmt.Errorf("serialize container: %w", err)
	}

	if err := writeFileAtomic(path, out, 0o600); err != nil {
		vaultlog.Error("failed to write container", "path", path, "err", err)
		return fmt.Errorf("write %s: %w", path, err)
	}

	vaultlog.Info("wrote container", "path", path, "bytes", len(out))
	printVerbose("wrote %s (%d bytes, hash=%s, cipher=%s)\n", path, len(out), newHashName, newCipher)
	return nil
}

// writeFileAtomic writes data to path via a temp file in the same
// directory followed by a rename, so a crash mid-write never leaves a
// half-written container where a caller expects one.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(dirOf(path), ".swordctl-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if os.IsPathSeparator(path[i]) {
			return path[:i]
		}
	}
	return "."
}
