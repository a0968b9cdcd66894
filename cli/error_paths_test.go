package cli

import (
	"testing"

	"shopcart/domain"
	"shopcart/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductAddInvalidDraft(t *testing.T) {
	defer resetCLI()
	sess = session.NewInMemorySession(session.Seed{})

	// clear any name a previous test left on the flag
	_, err := run("product", "add", "--name", "", "--price", "100")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidProductError(err))
}

func TestProductUpdateNotFound(t *testing.T) {
	defer resetCLI()
	sess = session.NewInMemorySession(session.Seed{})

	_, err := run("product", "update", "ghost", "--price", "100")
	require.Error(t, err)
	assert.True(t, domain.IsProductNotFoundError(err))
}

func TestDiscountAddUnknownProduct(t *testing.T) {
	defer resetCLI()
	sess = session.NewInMemorySession(session.Seed{})

	_, err := run("discount", "add", "ghost", "--quantity", "5", "--rate", "0.1")
	require.Error(t, err)
	assert.True(t, domain.IsProductNotFoundError(err))
}

func TestCouponAddDuplicate(t *testing.T) {
	defer resetCLI()
	sess = session.NewInMemorySession(session.DefaultSeed())

	_, err := run("coupon", "add", "--name", "again", "--code", "PERCENT10", "--type", "percentage", "--value", "10")
	require.Error(t, err)
	assert.True(t, domain.IsDuplicateCouponError(err))
}

func TestCouponAddInvalid(t *testing.T) {
	defer resetCLI()
	sess = session.NewInMemorySession(session.Seed{})

	_, err := run("coupon", "add", "--name", "bad", "--code", "BAD", "--type", "bogus", "--value", "10")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidCouponError(err))
}

func TestCouponApplyUnknownIsIgnored(t *testing.T) {
	defer resetCLI()
	sess = session.NewInMemorySession(session.Seed{})

	out, err := run("coupon", "apply", "NOPE")
	require.NoError(t, err, "unknown code prints to stderr and succeeds")
	assert.Empty(t, out)
}

func TestCartAddUnknownProductIsIgnored(t *testing.T) {
	defer resetCLI()
	sess = session.NewInMemorySession(session.Seed{})

	out, err := run("cart", "add", "ghost")
	require.NoError(t, err)
	assert.Empty(t, out)
}
