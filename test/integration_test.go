// Package integration exercises the public API end to end, the way an
// application would consume it.
package integration

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	xwing "github.com/pqforge/xwing-go"
	"github.com/pqforge/xwing-go/seal"
)

func TestKeyLifecycle(t *testing.T) {
	pub, sk, err := xwing.GenerateKey()
	require.NoError(t, err)
	require.Len(t, pub, xwing.PublicKeySize)

	serialized := sk.Bytes()
	require.Len(t, serialized, xwing.SeedSize)

	restored, err := xwing.ParsePrivateKey(serialized)
	require.NoError(t, err)

	restoredPub, err := restored.PublicKey()
	require.NoError(t, err)
	require.Equal(t, pub, restoredPub)

	ct, ss, err := xwing.Encapsulate(pub)
	require.NoError(t, err)

	got, err := xwing.Decapsulate(restored, ct)
	require.NoError(t, err)
	require.Equal(t, ss, got)

	sk.Zeroize()
	restored.Zeroize()
}

func TestSchemeInterop(t *testing.T) {
	// Keys unmarshaled through the generic circl interface must agree with
	// the direct API.
	s := xwing.Scheme()

	pub, sk, err := xwing.GenerateKey()
	require.NoError(t, err)

	schemePub, err := s.UnmarshalBinaryPublicKey(pub)
	require.NoError(t, err)
	schemePriv, err := s.UnmarshalBinaryPrivateKey(sk.Bytes())
	require.NoError(t, err)

	ct, ss, err := s.Encapsulate(schemePub)
	require.NoError(t, err)

	direct, err := xwing.Decapsulate(sk, ct)
	require.NoError(t, err)
	require.Equal(t, ss, direct)

	viaScheme, err := s.Decapsulate(schemePriv, ct)
	require.NoError(t, err)
	require.Equal(t, ss, viaScheme)
}

func TestSealedMessageExchange(t *testing.T) {
	pub, sk, err := xwing.GenerateKey()
	require.NoError(t, err)

	for _, msg := range []string{"", "x", "a longer message spanning more than one block of the cipher"} {
		envelope, err := seal.Seal(pub, []byte(msg), []byte("session-1"))
		require.NoError(t, err)

		plaintext, err := seal.Open(sk, envelope, []byte("session-1"))
		require.NoError(t, err)
		require.Equal(t, msg, string(plaintext))
	}
}

func TestConcurrentOperations(t *testing.T) {
	pub, sk, err := xwing.GenerateKey()
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			ct, ss, err := xwing.Encapsulate(pub)
			if err != nil {
				errs <- err
				return
			}
			got, err := xwing.Decapsulate(sk, ct)
			if err != nil {
				errs <- err
				return
			}
			if string(got) != string(ss) {
				errs <- xwing.ErrDecapsulation
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
