package anyon_test

import (
	"testing"

	"github.com/Cornell-QCA/tqc-emu/anyon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalVectors(t *testing.T) {
	require.Equal(t, anyon.ChargeVector{1, 0, 0}, anyon.Psi.Vector())
	require.Equal(t, anyon.ChargeVector{0, 1, 0}, anyon.Vacuum.Vector())
	require.Equal(t, anyon.ChargeVector{0, 0, 1}, anyon.Sigma.Vector())
	require.True(t, anyon.Charge(7).Vector().IsZero())
}

func TestChargeStringRoundTrip(t *testing.T) {
	for _, c := range anyon.Charges {
		got, err := anyon.ParseCharge(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
	require.Equal(t, "Psi", anyon.Psi.String())
	require.Equal(t, "Vacuum", anyon.Vacuum.String())
	require.Equal(t, "Sigma", anyon.Sigma.String())

	got, err := anyon.ParseCharge("  sigma ")
	require.NoError(t, err)
	require.Equal(t, anyon.Sigma, got)

	_, err = anyon.ParseCharge("Tau")
	require.ErrorIs(t, err, anyon.ErrUnknownCharge)
	require.Equal(t, "Charge(9)", anyon.Charge(9).String())
}

func TestChargeText(t *testing.T) {
	b, err := anyon.Vacuum.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Vacuum", string(b))

	var c anyon.Charge
	require.NoError(t, c.UnmarshalText([]byte("psi")))
	require.Equal(t, anyon.Psi, c)
	require.ErrorIs(t, c.UnmarshalText([]byte("x")), anyon.ErrUnknownCharge)

	_, err = anyon.Charge(3).MarshalText()
	require.ErrorIs(t, err, anyon.ErrUnknownCharge)
}

func TestFuseSingleLabels(t *testing.T) {
	cases := []struct {
		a, b anyon.Charge
		want anyon.ChargeVector
	}{
		{anyon.Vacuum, anyon.Vacuum, anyon.ChargeVector{0, 1, 0}},
		{anyon.Vacuum, anyon.Psi, anyon.ChargeVector{1, 0, 0}},
		{anyon.Vacuum, anyon.Sigma, anyon.ChargeVector{0, 0, 1}},
		{anyon.Psi, anyon.Psi, anyon.ChargeVector{0, 1, 0}},
		{anyon.Psi, anyon.Sigma, anyon.ChargeVector{0, 0, 1}},
		{anyon.Sigma, anyon.Sigma, anyon.ChargeVector{1, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.a.String()+"x"+tc.b.String(), func(t *testing.T) {
			require.Equal(t, tc.want, anyon.Fuse(tc.a.Vector(), tc.b.Vector()))
			require.Equal(t, tc.want, anyon.IsingFusionTable.Rule(tc.a, tc.b))
		})
	}
}

func TestFuseAccumulatedMultiplicities(t *testing.T) {
	got := anyon.Fuse(anyon.ChargeVector{4, 3, 1}, anyon.ChargeVector{2, 5, 2})
	require.Equal(t, anyon.ChargeVector{28, 25, 21}, got)

	// Non-leaf nodes: (1+ψ) ⊗ σ = 2σ, and 2σ ⊗ σ = 2 + 2ψ.
	require.Equal(t, anyon.ChargeVector{0, 0, 2}, anyon.Fuse(anyon.ChargeVector{1, 1, 0}, anyon.Sigma.Vector()))
	require.Equal(t, anyon.ChargeVector{2, 2, 0}, anyon.Fuse(anyon.ChargeVector{0, 0, 2}, anyon.Sigma.Vector()))

	require.True(t, anyon.Fuse(anyon.ChargeVector{}, anyon.ChargeVector{3, 3, 3}).IsZero())
}

func TestFuseCommutativeAndAssociative(t *testing.T) {
	var vs []anyon.ChargeVector
	for p := uint64(0); p < 3; p++ {
		for v := uint64(0); v < 3; v++ {
			for s := uint64(0); s < 3; s++ {
				vs = append(vs, anyon.ChargeVector{p, v, s})
			}
		}
	}
	require.True(t, anyon.IsingFusionTable.IsCommutative())
	for _, a := range vs {
		for _, b := range vs {
			assert.Equal(t, anyon.Fuse(a, b), anyon.Fuse(b, a), "a=%v b=%v", a, b)
		}
	}
	for _, a := range vs[:9] {
		for _, b := range vs[9:18] {
			for _, c := range vs[18:] {
				left := anyon.Fuse(anyon.Fuse(a, b), c)
				right := anyon.Fuse(a, anyon.Fuse(b, c))
				assert.Equal(t, left, right, "a=%v b=%v c=%v", a, b, c)
			}
		}
	}
}

func TestFuseAll(t *testing.T) {
	_, ok := anyon.IsingFusionTable.FuseAll()
	require.False(t, ok)

	got, ok := anyon.IsingFusionTable.FuseAll(
		anyon.Sigma.Vector(), anyon.Sigma.Vector(), anyon.Psi.Vector(), anyon.Vacuum.Vector(),
	)
	require.True(t, ok)
	require.Equal(t, anyon.ChargeVector{1, 1, 0}, got)
}

func TestChargeVectorHelpers(t *testing.T) {
	v := anyon.ChargeVector{2, 0, 1}
	require.True(t, v.Has(anyon.Psi))
	require.False(t, v.Has(anyon.Vacuum))
	require.Equal(t, uint64(1), v.Of(anyon.Sigma))
	require.Equal(t, uint64(0), v.Of(anyon.Charge(5)))
	require.True(t, v.Contains(anyon.Psi.Vector()))
	require.False(t, v.Contains(anyon.Vacuum.Vector()))
	require.Equal(t, "[2 0 1]", v.String())
	require.Equal(t, anyon.ChargeVector{4, 0, 2}, v.Scale(2))
	require.Equal(t, anyon.ChargeVector{3, 1, 1}, v.Add(anyon.Vacuum.Vector().Add(anyon.Psi.Vector())))
}

func TestAnyonAccessors(t *testing.T) {
	a := anyon.New("a1", anyon.Sigma, anyon.Position{X: 1.5, Y: -2})
	require.Equal(t, "a1", a.Name())
	require.Equal(t, anyon.Sigma, a.Charge())
	require.Equal(t, anyon.Position{X: 1.5, Y: -2}, a.Position())
	require.Equal(t, "Anyon: name=a1, charge=Sigma, position=(1.5, -2)", a.String())
}
