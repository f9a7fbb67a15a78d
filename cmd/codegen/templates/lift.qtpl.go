// Hand-written in the shape of qtc output; there is no lift.qtpl source.
// See https://github.com/valyala/quicktemplate for details.

package templates

import (
	qtio422016 "io"

	qt422016 "github.com/valyala/quicktemplate"
)

var (
	_ = qtio422016.Copy
	_ = qt422016.AcquireByteBuffer
)

// StreamLiftGen writes a skeleton of a LiftN function of the given arity
// (>= 2) to qw422016: its doc comment and generic signature in the shape of
// the arity 2-8 functions committed to lift_gen.go. The body it writes only
// panics; the CellMap/Apply fold is not generated.
func StreamLiftGen(qw422016 *qt422016.Writer, arity int) {
	types := prefixedStrings("T", arity)
	result := "TR"

	qw422016.N().S("// Lift")
	qw422016.N().D(arity)
	qw422016.N().S(" combines ")
	qw422016.N().D(arity)
	qw422016.N().S(" cells with f, recomputed whenever any of them updates.\n")
	qw422016.N().S("func Lift")
	qw422016.N().D(arity)
	qw422016.N().S("[")
	qw422016.N().S(types)
	qw422016.N().S(", ")
	qw422016.N().S(result)
	qw422016.N().S(" any](f func(")
	qw422016.N().S(types)
	qw422016.N().S(") ")
	qw422016.N().S(result)
	qw422016.N().S(", ")
	for i := 0; i < arity; i++ {
		qw422016.N().S("c" + typeSuffix(i))
		qw422016.N().S(" *Cell[T" + typeSuffix(i) + "]")
		if i < arity-1 {
			qw422016.N().S(", ")
		}
	}
	qw422016.N().S(") *Cell[")
	qw422016.N().S(result)
	qw422016.N().S("] {\n")
	qw422016.N().S("\tcurried := f\n")
	qw422016.N().S("\t_ = curried\n")
	qw422016.N().S("\tpanic(\"regenerate: fold c0..c" + typeSuffix(arity-1) + " through CellMap/Apply, see lift_gen.go\")\n")
	qw422016.N().S("}\n")
}

func typeSuffix(i int) string {
	return itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}

// WriteLiftGen writes StreamLiftGen's output to qq422016.
func WriteLiftGen(qq422016 qtio422016.Writer, arity int) {
	qw422016 := qt422016.AcquireWriter(qq422016)
	StreamLiftGen(qw422016, arity)
	qt422016.ReleaseWriter(qw422016)
}

// LiftGen returns the source of a LiftN function of the given arity as a
// string, ready to append into a generated file.
func LiftGen(arity int) string {
	qb422016 := qt422016.AcquireByteBuffer()
	WriteLiftGen(qb422016, arity)
	qs422016 := string(qb422016.B)
	qt422016.ReleaseByteBuffer(qb422016)
	return qs422016
}
