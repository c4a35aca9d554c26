package anyon

import "fmt"

// ChargeVector holds non-negative multiplicities indexed by Charge.Index:
// [Psi, Vacuum, Sigma].
type ChargeVector [NumCharges]uint64

// Of returns the multiplicity of charge c (0 for invalid labels).
func (v ChargeVector) Of(c Charge) uint64 {
	if !c.Valid() {
		return 0
	}

	return v[c]
}

// Has reports whether charge c appears with non-zero multiplicity.
func (v ChargeVector) Has(c Charge) bool { return v.Of(c) > 0 }

// IsZero reports whether every multiplicity is zero.
func (v ChargeVector) IsZero() bool { return v == (ChargeVector{}) }

// Add returns the component-wise sum v + w.
func (v ChargeVector) Add(w ChargeVector) ChargeVector {
	var out ChargeVector
	for i := range out {
		out[i] = v[i] + w[i]
	}

	return out
}

// Scale returns k·v.
func (v ChargeVector) Scale(k uint64) ChargeVector {
	var out ChargeVector
	for i := range out {
		out[i] = v[i] * k
	}

	return out
}

// Contains reports whether every charge present in sub is also present in v.
func (v ChargeVector) Contains(sub ChargeVector) bool {
	for i := range v {
		if sub[i] > 0 && v[i] == 0 {
			return false
		}
	}

	return true
}

// String renders the vector as "[psi vacuum sigma]".
func (v ChargeVector) String() string {
	return fmt.Sprintf("[%d %d %d]", v[Psi], v[Vacuum], v[Sigma])
}

// FusionTable maps a pair of charge labels to the multiplicity vector of
// their fusion channels: table[a][b] = a ⊗ b.
type FusionTable [NumCharges][NumCharges]ChargeVector

// IsingFusionTable holds the Ising fusion rules, rows and columns in
// [Psi, Vacuum, Sigma] order:
//
//	ψψ = 1   ψ1 = ψ   ψσ = σ
//	1ψ = ψ   11 = 1   1σ = σ
//	σψ = σ   σ1 = σ   σσ = 1 + ψ
var IsingFusionTable = FusionTable{
	{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{0, 0, 1}, {0, 0, 1}, {1, 1, 0}},
}

// Rule returns a ⊗ b for two single labels.
func (t FusionTable) Rule(a, b Charge) ChargeVector {
	if !a.Valid() || !b.Valid() {
		return ChargeVector{}
	}

	return t[a][b]
}

// Fuse fuses two multiplicity vectors.
// The outer product a[i]·b[j] weights table[i][j]; the weighted channel
// vectors are summed. For one-hot inputs this reduces to Rule.
//
// Complexity: O(9).
func (t FusionTable) Fuse(a, b ChargeVector) ChargeVector {
	var (
		out    ChargeVector
		i, j   int
		weight uint64
	)
	for i = 0; i < NumCharges; i++ {
		if a[i] == 0 {
			continue
		}
		for j = 0; j < NumCharges; j++ {
			weight = a[i] * b[j]
			if weight == 0 {
				continue
			}
			out = out.Add(t[i][j].Scale(weight))
		}
	}

	return out
}

// FuseAll folds Fuse left to right over vs. Returns the zero vector and
// false when vs is empty.
func (t FusionTable) FuseAll(vs ...ChargeVector) (ChargeVector, bool) {
	if len(vs) == 0 {
		return ChargeVector{}, false
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = t.Fuse(acc, v)
	}

	return acc, true
}

// IsCommutative reports whether table[a][b] == table[b][a] for every pair.
func (t FusionTable) IsCommutative() bool {
	for i := 0; i < NumCharges; i++ {
		for j := i + 1; j < NumCharges; j++ {
			if t[i][j] != t[j][i] {
				return false
			}
		}
	}

	return true
}

// Fuse applies the Ising rules to a and b.
func Fuse(a, b ChargeVector) ChargeVector { return IsingFusionTable.Fuse(a, b) }
