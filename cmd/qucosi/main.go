// Command qucosi demonstrates the simulator on the classic oracle
// algorithms: coin flipping, Deutsch, Deutsch–Jozsa, Bernstein–Vazirani
// and Simon. It takes no flags and writes styled text to stdout;
// diagnostics go to stderr through zerolog.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fthomas/qucosi/gate"
	"github.com/fthomas/qucosi/linalg"
	"github.com/fthomas/qucosi/qubit"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
	qubit.SetLogger(log)
	gate.SetLogger(log)

	coinFlipping(log)
	fourierDemo(log)
	deutsch(log)
	deutschJozsa(log)
	bernsteinVazirani(log)
	simon(log)
}

func fatal(log zerolog.Logger, err error, what string) {
	if err != nil {
		log.Fatal().Err(err).Msg(what)
	}
}

// coinFlipping measures H·|0⟩ repeatedly; both outcomes converge to
// probability one half.
func coinFlipping(log zerolog.Logger) {
	const shots = 48779

	h := gate.H()
	counts := make([]int, 2)
	for i := 0; i < shots; i++ {
		q, err := qubit.NewBasis(0, 1)
		fatal(log, err, "coin: basis state")
		fatal(log, h.Apply(q), "coin: apply H")
		counts[q.Measure(nil)]++
	}

	q, err := qubit.NewBasis(0, 1)
	fatal(log, err, "coin: basis state")
	fatal(log, h.Apply(q), "coin: apply H")
	body := renderQubit(q) + "\n\n" +
		renderFrequencies([]string{"|0⟩", "|1⟩"}, counts, shots)
	fmt.Println(section("Quantum coin flipping", body))
}

// fourierDemo shows the 2-wire QFT matrix and its action on the uniform
// superposition, which it maps back to |00⟩.
func fourierDemo(log zerolog.Logger) {
	f, err := gate.F(2)
	fatal(log, err, "qft: build F(2)")
	f.AssertUnitary(0)

	q, err := qubit.NewBasis(0, 2)
	fatal(log, err, "qft: basis state")
	h, err := gate.H().TensorPow(2)
	fatal(log, err, "qft: tensor power")
	fatal(log, h.Apply(q), "qft: uniform superposition")
	fatal(log, f.Apply(q), "qft: apply F(2)")

	body := renderGate(f) + "\n\n" +
		dimStyle.Render("F(2) · (uniform superposition) =") + "\n" +
		renderQubit(q)
	fmt.Println(section("Quantum Fourier transform F(2)", body))
}

// deutsch distinguishes constant from balanced one-bit functions with a
// single oracle query: the leading wire of H⊗H · U_f · H⊗H · |01⟩ ends
// in |0⟩ for constant f and |1⟩ for balanced f.
func deutsch(log zerolog.Logger) {
	var b string
	for _, f := range [][]int{{0, 0}, {1, 1}, {0, 1}, {1, 0}} {
		q, err := qubit.NewBasis(1, 2) // |0⟩ ⊗ |1⟩
		fatal(log, err, "deutsch: basis state")
		h2, err := gate.H().TensorPow(2)
		fatal(log, err, "deutsch: tensor power")
		uf, err := gate.UfBool(f)
		fatal(log, err, "deutsch: oracle")

		fatal(log, h2.Apply(q), "deutsch: superpose")
		fatal(log, uf.Apply(q), "deutsch: query oracle")
		fatal(log, h2.Apply(q), "deutsch: interfere")

		outcome, err := q.MeasurePartial(1, nil)
		fatal(log, err, "deutsch: measure leading wire")
		verdict := "constant"
		if outcome == 1 {
			verdict = "balanced"
		}
		b += fmt.Sprintf("f = %v → %s\n", f, verdictStyle.Render(verdict))
	}
	fmt.Println(section("Deutsch", strings.TrimRight(b, "\n")))
}

// deutschJozsa runs the n-bit generalization on three wires.
func deutschJozsa(log zerolog.Logger) {
	var b string
	for _, tc := range []struct {
		name string
		f    []int
	}{
		{"constant", []int{0, 0, 0, 0}},
		{"constant", []int{1, 1, 1, 1}},
		{"balanced", []int{0, 1, 0, 1}},
		{"balanced", []int{0, 0, 1, 1}},
	} {
		q, err := qubit.NewBasis(1, 3) // |00⟩ ⊗ |1⟩
		fatal(log, err, "dj: basis state")
		h3, err := gate.H().TensorPow(3)
		fatal(log, err, "dj: tensor power")
		uf, err := gate.UfBool(tc.f)
		fatal(log, err, "dj: oracle")
		h2, err := gate.H().TensorPow(2)
		fatal(log, err, "dj: tensor power")
		post := h2.Tensor(gate.I())

		fatal(log, h3.Apply(q), "dj: superpose")
		fatal(log, uf.Apply(q), "dj: query oracle")
		fatal(log, post.Apply(q), "dj: interfere")

		outcome, err := q.MeasurePartial(2, nil)
		fatal(log, err, "dj: measure input wires")
		verdict := "balanced"
		if outcome == 0 {
			verdict = "constant"
		}
		b += fmt.Sprintf("f = %v (%s) → measured |%02b⟩ → %s\n",
			tc.f, tc.name, outcome, verdictStyle.Render(verdict))
	}
	fmt.Println(section("Deutsch–Jozsa (3 wires)", strings.TrimRight(b, "\n")))
}

// bernsteinVazirani recovers a hidden 5-bit string from a single query
// of f(x) = a·x mod 2.
func bernsteinVazirani(log zerolog.Logger) {
	const hidden = 25 // 11001₂

	f := make([]int, 32)
	for x := range f {
		f[x] = linalg.BitDot(hidden, uint(x))
	}

	q, err := qubit.NewBasis(1, 6) // |00000⟩ ⊗ |1⟩
	fatal(log, err, "bv: basis state")
	h6, err := gate.H().TensorPow(6)
	fatal(log, err, "bv: tensor power")
	uf, err := gate.UfBool(f)
	fatal(log, err, "bv: oracle")

	fatal(log, h6.Apply(q), "bv: superpose")
	fatal(log, uf.Apply(q), "bv: query oracle")
	fatal(log, h6.Apply(q), "bv: interfere")

	outcome, err := q.MeasurePartial(5, nil)
	fatal(log, err, "bv: measure input wires")

	body := fmt.Sprintf("hidden a = %d = %05b₂\nmeasured   %d = %05b₂ with probability 1",
		hidden, hidden, outcome, outcome)
	fmt.Println(section("Bernstein–Vazirani (6 wires)", body))
}

// simon samples wire patterns orthogonal (mod 2) to the hidden period s
// of a two-to-one function with f(x) = f(x ⊕ s).
func simon(log zerolog.Logger) {
	const (
		s     = 3 // hidden period 11₂
		runs  = 8
		wires = 2
	)

	// f(0) = f(3), f(1) = f(2): constant on the cosets of {0, s}.
	f := []int{1, 2, 2, 1}

	uf, err := gate.Uf(f, wires)
	fatal(log, err, "simon: oracle")
	hh, err := gate.H().TensorPow(wires)
	fatal(log, err, "simon: tensor power")
	ii, err := gate.I().TensorPow(wires)
	fatal(log, err, "simon: tensor power")
	pre := hh.Tensor(ii)

	var b string
	for i := 0; i < runs; i++ {
		q, err := qubit.NewBasis(0, 2*wires)
		fatal(log, err, "simon: basis state")
		fatal(log, pre.Apply(q), "simon: superpose inputs")
		fatal(log, uf.Apply(q), "simon: query oracle")
		fatal(log, pre.Apply(q), "simon: interfere")

		y, err := q.MeasurePartial(wires, nil)
		fatal(log, err, "simon: measure input wires")
		b += fmt.Sprintf("run %d: y = %02b₂, y·s = %d (mod 2)\n",
			i+1, y, linalg.BitDot(uint(y), s))
	}
	b += verdictStyle.Render("every sampled y satisfies y·s ≡ 0, pinning s = 11₂")
	fmt.Println(section("Simon (hidden period)", b))
}
