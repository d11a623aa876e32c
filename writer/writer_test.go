package writer_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/imports"
	"github.com/viant/javagen/types"
	"github.com/viant/javagen/writer"
	"testing"
)

func TestWriter_Emit(t *testing.T) {
	timeUnit := types.MustGuess("java.util.concurrent.TimeUnit")
	tests := []struct {
		name    string
		options []writer.Option
		emit    func(w *writer.Writer)
		expect  string
		wantErr bool
	}{
		{
			name:    "wrapping space",
			options: []writer.Option{writer.WithColumnLimit(10)},
			emit:    func(w *writer.Writer) { w.Emit("aaaa$Wbbbb$Wcccc\n") },
			expect:  "aaaa bbbb\n    cccc\n",
		},
		{
			name:    "zero width space",
			options: []writer.Option{writer.WithColumnLimit(6)},
			emit:    func(w *writer.Writer) { w.Emit("aaaa$Zbbbb\n") },
			expect:  "aaaa\n    bbbb\n",
		},
		{
			name:    "statement continuation",
			options: []writer.Option{writer.WithColumnLimit(5)},
			emit:    func(w *writer.Writer) { w.Emit("$[x =$Wy;\n$]z;\n") },
			expect:  "x =\n    y;\nz;\n",
		},
		{
			name:   "multi line statement",
			emit:   func(w *writer.Writer) { w.Emit("$[a\nb;\n$]c;\n") },
			expect: "a\n    b;\nc;\n",
		},
		{
			name:   "indentation",
			emit:   func(w *writer.Writer) { w.Emit("{\n$>x;\n$<}\n") },
			expect: "{\n  x;\n}\n",
		},
		{
			name:    "custom indent",
			options: []writer.Option{writer.WithIndent("\t")},
			emit:    func(w *writer.Writer) { w.Emit("{\n$>x;\n$<}\n") },
			expect:  "{\n\tx;\n}\n",
		},
		{
			name: "literals",
			emit: func(w *writer.Writer) {
				w.Emit("$L $S $S $N $$", code.L(5), code.S("a\"b"), code.NullS(), code.N("taco"))
			},
			expect: `5 "a\"b" null taco $`,
		},
		{
			name: "nested block",
			emit: func(w *writer.Writer) {
				w.Emit("f($L)", code.L(code.MustOf("$S", code.S("x"))))
			},
			expect: `f("x")`,
		},
		{
			name: "line comment",
			emit: func(w *writer.Writer) {
				w.EmitComment(code.MustOf("line one\nline two"))
			},
			expect: "// line one\n// line two\n",
		},
		{
			name: "javadoc",
			emit: func(w *writer.Writer) {
				w.EmitJavadoc(code.MustOf("a\n\nb\n"))
			},
			expect: "/**\n * a\n *\n * b\n */\n",
		},
		{
			name: "blank lines collapse",
			emit: func(w *writer.Writer) {
				w.Emit("a\n")
				w.EmitBlankLine()
				w.EmitBlankLine()
				w.Emit("b\n")
			},
			expect: "a\n\nb\n",
		},
		{
			name:    "static member",
			options: []writer.Option{writer.WithStaticImports(imports.NewStaticSet(types.StaticMember(timeUnit, "SECONDS")))},
			emit: func(w *writer.Writer) {
				w.Emit("$T.SECONDS, $T.MINUTES", code.T(timeUnit), code.T(timeUnit))
			},
			expect: "SECONDS, java.util.concurrent.TimeUnit.MINUTES",
		},
		{
			name:    "unbalanced statement exit",
			emit:    func(w *writer.Writer) { w.Emit("x;\n$]") },
			wantErr: true,
		},
		{
			name:    "nested statement enter",
			emit:    func(w *writer.Writer) { w.Emit("$[$[x;\n$]$]") },
			wantErr: true,
		},
		{
			name:    "negative indentation",
			emit:    func(w *writer.Writer) { w.Emit("$<x") },
			wantErr: true,
		},
		{
			name:    "nil type",
			emit:    func(w *writer.Writer) { w.EmitType(nil) },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := writer.New(writer.Emitting, tt.options...)
			tt.emit(w)
			err := w.Close()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, w.String())
		})
	}
}

func TestWriter_LookupName(t *testing.T) {
	const pkg = "com.squareup.tacos"
	topping := types.Get(pkg, "Taco", "Topping")
	otherTopping := types.MustGuess("com.other.Topping")
	list := types.MustGuess("java.util.List")
	entry := types.MustGuess("java.util.Map.Entry")

	candidates := imports.NewCandidateSet(pkg)
	candidates.Add(list)
	candidates.Add(entry)
	resolution := imports.Resolve(candidates, nil, imports.Options{})

	w := writer.New(writer.Emitting, writer.WithPackage(pkg), writer.WithResolution(resolution))
	w.PushScope(writer.Scope{Name: "Taco", Nested: []string{"Topping"}})

	assert.Equal(t, "Topping", w.LookupName(topping))
	assert.Equal(t, "com.other.Topping", w.LookupName(otherTopping))
	assert.Equal(t, "List", w.LookupName(list))
	assert.Equal(t, "Map.Entry", w.LookupName(entry))
	assert.Equal(t, "Taco", w.LookupName(types.Get(pkg, "Taco")))
	assert.Equal(t, "Sauce", w.LookupName(types.Get(pkg, "Sauce")))
	assert.Equal(t, "java.util.Set", w.LookupName(types.MustGuess("java.util.Set")))

	w.EmitTypeVariables([]types.TypeVariable{types.VariableOf("List")})
	assert.Equal(t, "java.util.List", w.LookupName(list))
	w.PopTypeVariables("List")
	assert.Equal(t, "List", w.LookupName(list))

	w.PopScope()
	assert.Equal(t, "Taco.Topping", w.LookupName(topping))
	require.NoError(t, w.Close())
}

func TestWriter_EmitType(t *testing.T) {
	mapType := types.MustGuess("java.util.Map")
	tests := []struct {
		name     string
		typeName types.TypeName
		expect   string
	}{
		{name: "primitive array", typeName: types.ArrayOf(types.Int), expect: "int[]"},
		{name: "parameterized", typeName: types.ParameterizedOf(mapType, types.String, types.ArrayOf(types.VariableOf("T"))), expect: "java.util.Map<java.lang.String, T[]>"},
		{name: "object wildcard", typeName: types.SubtypeOf(types.Object), expect: "?"},
		{name: "super wildcard", typeName: types.SupertypeOf(types.String), expect: "? super java.lang.String"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := writer.New(writer.Emitting)
			w.EmitType(tt.typeName)
			require.NoError(t, w.Close())
			assert.Equal(t, tt.expect, w.String())
		})
	}
}

func TestWriter_Collecting(t *testing.T) {
	const pkg = "com.squareup.tacos"
	list := types.MustGuess("java.util.List")
	date := types.MustGuess("java.util.Date")
	w := writer.New(writer.Collecting, writer.WithPackage(pkg))
	w.EmitJavadoc(code.MustOf("See $T\n", code.T(types.MustGuess("java.util.Locale"))))
	w.Emit("$T<$T> $N = $T.of($T.now());\n",
		code.T(list), code.T(date), code.N("dates"), code.T(list), code.T(types.Get(pkg, "Clock")))
	require.NoError(t, w.Close())
	assert.Equal(t, "", w.String())
	assert.Equal(t, []string{"List", "Date", "Clock"}, w.Candidates().Names())
}
