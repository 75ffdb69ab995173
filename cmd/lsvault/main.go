package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"text/tabwriter"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/vaultd/x/vault"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/errors"
	"golang.org/x/crypto/ed25519"
)

func main() {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	hrpFl := fl.String("hrp", "iov", "Human readable part of the bech32 encoded addresses.")
	headerFl := fl.Bool("header", true, "Display header")
	keyFl := fl.String("key", "", "Path to an ed25519 private key file. The address of that key is used as an additional owner.")
	fl.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
	%s [options] [<owner address>...]

Print the addresses of the vault that belongs to each owner.

Vault addresses are derived from the owner address. That means that they are
deterministic and can be precomputed. This knowledge is helpful when building
transactions - all three addresses must be provided together with the owner.

Owner address can be hex encoded or use any of the "seq:", "cond:" or
"bech32:" prefixed formats. Instead of an address, a private key file, as
created by the bnscli keygen command, can be provided with the -key flag.

`, os.Args[0])
		fl.PrintDefaults()
	}
	fl.Parse(os.Args[1:])

	if fl.NArg() == 0 && *keyFl == "" {
		fmt.Fprintln(os.Stderr, "At least one owner address is required.")
		os.Exit(2)
	}

	owners := make([]weave.Address, 0, fl.NArg()+1)
	if *keyFl != "" {
		owner, err := keyOwner(*keyFl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid private key: %s\n", err)
			os.Exit(2)
		}
		owners = append(owners, owner)
	}
	for _, raw := range fl.Args() {
		owner, err := parseAddress(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid owner address %q: %s\n", raw, err)
			os.Exit(2)
		}
		owners = append(owners, owner)
	}

	if err := printAddresses(os.Stdout, owners, *hrpFl, *headerFl); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot print addresses: %s\n", err)
		os.Exit(1)
	}
}

// parseAddress decodes an address using the same rules as the genesis file.
func parseAddress(raw string) (weave.Address, error) {
	enc, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "cannot encode")
	}
	var a weave.Address
	if err := a.UnmarshalJSON(enc); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// keyOwner returns the address of the signature condition of the private key
// stored in given file. The file content is a raw ed25519 private key.
func keyOwner(path string) (weave.Address, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "invalid private key length: %d", len(raw))
	}
	key := &crypto.PrivateKey{
		Priv: &crypto.PrivateKey_Ed25519{
			Ed25519: raw,
		},
	}
	return key.PublicKey().Address(), nil
}

func printAddresses(out io.Writer, owners []weave.Address, hrp string, header bool) error {
	w := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	defer w.Flush()

	if header {
		fmt.Fprintln(w, "owner\tname\thex\tbech32")
	}
	for _, owner := range owners {
		addrs := vault.DeriveAddresses(owner)
		for _, a := range []struct {
			name string
			addr weave.Address
		}{
			{"state", addrs.State},
			{"auth", addrs.Auth},
			{"vault", addrs.Vault},
		} {
			b32, err := toBech32(hrp, a.addr)
			if err != nil {
				return errors.Wrapf(err, "%s address", a.name)
			}
			fmt.Fprintf(w, "%X\t%s\t%X\t%s\n", []byte(owner), a.name, []byte(a.addr), b32)
		}
	}
	return nil
}

func toBech32(hrp string, addr weave.Address) (string, error) {
	data, err := bech32.ConvertBits(addr, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "convert bits")
	}
	enc, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", errors.Wrap(err, "bech32 encode")
	}
	return enc, nil
}
