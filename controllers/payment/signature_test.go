package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureRoundTrip(t *testing.T) {
	secret := "test-secret"
	sig := Sign("order_abc123", "pay_xyz789", secret)
	require.NotEmpty(t, sig)

	assert.True(t, VerifySignature("order_abc123", "pay_xyz789", sig, secret))
}

func TestSignatureSingleCharacterMutationFails(t *testing.T) {
	secret := "test-secret"
	sig := Sign("order_abc123", "pay_xyz789", secret)

	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		assert.False(t, VerifySignature("order_abc123", "pay_xyz789", string(mutated), secret),
			"mutation at index %d should fail verification", i)
	}
}

func TestSignatureWrongSecretFails(t *testing.T) {
	sig := Sign("order_abc123", "pay_xyz789", "secret-one")
	assert.False(t, VerifySignature("order_abc123", "pay_xyz789", sig, "secret-two"))
}

func TestSignatureBindsOrderAndPaymentRefs(t *testing.T) {
	secret := "test-secret"
	sig := Sign("order_abc123", "pay_xyz789", secret)

	// The same signature must not verify a different ref pair.
	assert.False(t, VerifySignature("order_abc124", "pay_xyz789", sig, secret))
	assert.False(t, VerifySignature("order_abc123", "pay_xyz780", sig, secret))
}
