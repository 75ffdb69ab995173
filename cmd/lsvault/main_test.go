package main

import (
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/vaultd/x/vault"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"golang.org/x/crypto/ed25519"
)

func TestPrintAddresses(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	addrs := vault.DeriveAddresses(owner)

	var out bytes.Buffer
	assert.Nil(t, printAddresses(&out, []weave.Address{owner}, "tiov", true))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, 4, len(lines))
	assert.Equal(t, true, strings.HasPrefix(lines[0], "owner"))

	for i, a := range []weave.Address{addrs.State, addrs.Auth, addrs.Vault} {
		line := lines[i+1]
		fields := strings.Fields(line)
		assert.Equal(t, 4, len(fields))
		assert.Equal(t, strings.ToUpper(hex.EncodeToString(a)), fields[2])
		assert.Equal(t, true, strings.HasPrefix(fields[3], "tiov1"))

		// Printed bech32 representation must decode to the same address.
		decoded, err := parseAddress("bech32:" + fields[3])
		assert.Nil(t, err)
		assert.Equal(t, a, decoded)
	}
}

func TestParseAddress(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	got, err := parseAddress(hex.EncodeToString(owner))
	assert.Nil(t, err)
	assert.Equal(t, owner, got)

	if _, err := parseAddress("zzz"); err == nil {
		t.Fatal("invalid hex must not be accepted")
	}
	if _, err := parseAddress(""); err == nil {
		t.Fatal("empty address must not be accepted")
	}
}

func TestKeyOwner(t *testing.T) {
	dir, err := ioutil.TempDir("", "lsvault")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	_, priv, err := ed25519.GenerateKey(nil)
	assert.Nil(t, err)
	keyPath := filepath.Join(dir, "key")
	assert.Nil(t, ioutil.WriteFile(keyPath, priv, 0600))

	owner, err := keyOwner(keyPath)
	assert.Nil(t, err)
	key := &crypto.PrivateKey{Priv: &crypto.PrivateKey_Ed25519{Ed25519: priv}}
	assert.Equal(t, key.PublicKey().Address(), owner)

	shortPath := filepath.Join(dir, "short")
	assert.Nil(t, ioutil.WriteFile(shortPath, priv[:10], 0600))
	if _, err := keyOwner(shortPath); err == nil {
		t.Fatal("truncated key must not be accepted")
	}
	if _, err := keyOwner(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("missing key file must not be accepted")
	}
}
