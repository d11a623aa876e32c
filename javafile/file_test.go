package javafile_test

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/javagen/code"
	"github.com/viant/javagen/decl"
	"github.com/viant/javagen/inspector/java"
	"github.com/viant/javagen/javafile"
	"github.com/viant/javagen/types"
	"testing"
)

const tacosPackage = "com.squareup.tacos"

var (
	system      = types.MustGuess("java.lang.System")
	timeUnit    = types.MustGuess("java.util.concurrent.TimeUnit")
	threadState = types.MustGuess("java.lang.Thread.State")
	utilDate    = types.MustGuess("java.util.Date")
	sqlDate     = types.MustGuess("java.sql.Date")
)

func statement(format string, args ...code.Arg) *code.Block {
	block, err := code.NewBuilder().AddStatement(format, args...).Build()
	if err != nil {
		panic(err)
	}
	return block
}

func minutesToSeconds(name string) *decl.Type {
	method := decl.NewMethod("minutesToSeconds", decl.Public, decl.Static)
	method.Returns = types.Long
	method.Parameters = []decl.Parameter{decl.NewParameter(types.Long, "minutes")}
	body, err := code.NewBuilder().
		AddStatement("$T.gc()", code.T(system)).
		AddStatement("return $1T.SECONDS.convert(minutes, $1T.MINUTES)", code.T(timeUnit)).
		Build()
	if err != nil {
		panic(err)
	}
	method.Body = body
	return decl.NewClass(name).AddMethod(method)
}

func field(fieldType types.TypeName, name string) decl.Field {
	return decl.NewField(fieldType, name)
}

func TestFile_Render(t *testing.T) {
	tests := []struct {
		name   string
		build  func() *javafile.Builder
		expect string
	}{
		{
			name: "no imports",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco"))
			},
			expect: "package com.squareup.tacos;\n\nclass Taco {\n}\n",
		},
		{
			name: "single import",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").AddField(field(utilDate, "madeFreshDate")))
			},
			expect: `package com.squareup.tacos;

import java.util.Date;

class Taco {
  Date madeFreshDate;
}
`,
		},
		{
			name: "conflicting imports",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").
					AddField(field(utilDate, "madeFreshDate")).
					AddField(field(sqlDate, "madeFreshDatabaseDate")))
			},
			expect: `package com.squareup.tacos;

import java.util.Date;

class Taco {
  Date madeFreshDate;

  java.sql.Date madeFreshDatabaseDate;
}
`,
		},
		{
			name: "skip java.lang with conflicting class last",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").
					AddField(field(types.Get("java.lang", "Float"), "litres")).
					AddField(field(types.Get("com.squareup.soda", "Float"), "beverage"))).
					SkipJavaLangImports(true)
			},
			expect: `package com.squareup.tacos;

class Taco {
  Float litres;

  com.squareup.soda.Float beverage;
}
`,
		},
		{
			name: "skip java.lang with conflicting class first",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").
					AddField(field(types.Get("com.squareup.soda", "Float"), "beverage")).
					AddField(field(types.Get("java.lang", "Float"), "litres"))).
					SkipJavaLangImports(true)
			},
			expect: `package com.squareup.tacos;

import com.squareup.soda.Float;

class Taco {
  Float beverage;

  java.lang.Float litres;
}
`,
		},
		{
			name: "conflicting parent name",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("A").
					AddType(decl.NewClass("B").
						AddType(decl.NewClass("Twin")).
						AddType(decl.NewClass("C").AddField(field(types.Get(tacosPackage, "A", "Twin", "D"), "d")))).
					AddType(decl.NewClass("Twin").AddType(decl.NewClass("D"))))
			},
			expect: `package com.squareup.tacos;

class A {
  class B {
    class Twin {
    }

    class C {
      A.Twin.D d;
    }
  }

  class Twin {
    class D {
    }
  }
}
`,
		},
		{
			name: "conflicting child name",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("A").
					AddType(decl.NewClass("B").
						AddType(decl.NewClass("C").
							AddField(field(types.Get(tacosPackage, "A", "Twin", "D"), "d")).
							AddType(decl.NewClass("Twin")))).
					AddType(decl.NewClass("Twin").AddType(decl.NewClass("D"))))
			},
			expect: `package com.squareup.tacos;

class A {
  class B {
    class C {
      A.Twin.D d;

      class Twin {
      }
    }
  }

  class Twin {
    class D {
    }
  }
}
`,
		},
		{
			name: "conflicting name out of scope",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("A").
					AddType(decl.NewClass("B").
						AddType(decl.NewClass("C").
							AddField(field(types.Get(tacosPackage, "A", "Twin", "D"), "d")).
							AddType(decl.NewClass("Nested").AddType(decl.NewClass("Twin"))))).
					AddType(decl.NewClass("Twin").AddType(decl.NewClass("D"))))
			},
			expect: `package com.squareup.tacos;

class A {
  class B {
    class C {
      Twin.D d;

      class Nested {
        class Twin {
        }
      }
    }
  }

  class Twin {
    class D {
    }
  }
}
`,
		},
		{
			name: "nested class and superclass share name",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").
					SetSuperclass(types.Get("com.squareup.wire", "Message")).
					AddType(decl.NewClass("Builder").SetSuperclass(types.Get("com.squareup.wire", "Message", "Builder"))))
			},
			expect: `package com.squareup.tacos;

import com.squareup.wire.Message;

class Taco extends Message {
  class Builder extends Message.Builder {
  }
}
`,
		},
		{
			name: "annotation is nested class",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("TestComponent").
					AddAnnotation(decl.NewAnnotation(types.Get("dagger", "Component"))).
					AddType(decl.NewClass("Builder").AddAnnotation(decl.NewAnnotation(types.Get("dagger", "Component", "Builder")))))
			},
			expect: `package com.squareup.tacos;

import dagger.Component;

@Component
class TestComponent {
  @Component.Builder
  class Builder {
  }
}
`,
		},
		{
			name: "default package",
			build: func() *javafile.Builder {
				main := decl.NewMethod("main", decl.Public, decl.Static)
				main.Parameters = []decl.Parameter{decl.NewParameter(types.ArrayOf(types.String), "args")}
				main.Body = code.MustOf("$T.out.println($S);\n", code.T(system), code.S("Hello World!"))
				return javafile.NewBuilder("", decl.NewClass("HelloWorld").AddMethod(main))
			},
			expect: `import java.lang.String;
import java.lang.System;

class HelloWorld {
  public static void main(String[] args) {
    System.out.println("Hello World!");
  }
}
`,
		},
		{
			name: "default package types are not imported",
			build: func() *javafile.Builder {
				return javafile.NewBuilder("hello", decl.NewClass("World").AddSuperinterface(types.Get("", "Test")))
			},
			expect: "package hello;\n\nclass World implements Test {\n}\n",
		},
		{
			name: "default package type referenced after a conflicting class",
			build: func() *javafile.Builder {
				return javafile.NewBuilder("hello", decl.NewClass("World").
					AddField(field(types.Get("com.a", "Test"), "imported")).
					AddField(field(types.Get("", "Test"), "local")))
			},
			expect: `package hello;

class World {
  com.a.Test imported;

  Test local;
}
`,
		},
		{
			name: "default package type referenced before a conflicting class",
			build: func() *javafile.Builder {
				return javafile.NewBuilder("hello", decl.NewClass("World").
					AddField(field(types.Get("", "Test"), "local")).
					AddField(field(types.Get("com.a", "Test"), "imported")))
			},
			expect: `package hello;

class World {
  Test local;

  com.a.Test imported;
}
`,
		},
		{
			name: "top of file comment",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco")).
					AddFileComment("Generated $L by javagen. DO NOT EDIT!", code.L("2015-01-13"))
			},
			expect: "// Generated 2015-01-13 by javagen. DO NOT EDIT!\npackage com.squareup.tacos;\n\nclass Taco {\n}\n",
		},
		{
			name: "empty lines in top of file comment",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco")).
					AddFileComment("\nGENERATED FILE:\n\nDO NOT EDIT!\n")
			},
			expect: "//\n// GENERATED FILE:\n//\n// DO NOT EDIT!\n//\npackage com.squareup.tacos;\n\nclass Taco {\n}\n",
		},
		{
			name: "package class conflicts with nested class",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").
					AddField(field(types.Get(tacosPackage, "A"), "a")).
					AddType(decl.NewClass("A")))
			},
			expect: `package com.squareup.tacos;

class Taco {
  com.squareup.tacos.A a;

  class A {
  }
}
`,
		},
		{
			name: "static imports none",
			build: func() *javafile.Builder {
				return javafile.NewBuilder("readme", minutesToSeconds("Util"))
			},
			expect: `package readme;

import java.lang.System;
import java.util.concurrent.TimeUnit;

class Util {
  public static long minutesToSeconds(long minutes) {
    System.gc();
    return TimeUnit.SECONDS.convert(minutes, TimeUnit.MINUTES);
  }
}
`,
		},
		{
			name: "static import once",
			build: func() *javafile.Builder {
				return javafile.NewBuilder("readme", minutesToSeconds("Util")).
					AddStaticImport(timeUnit, "SECONDS")
			},
			expect: `package readme;

import static java.util.concurrent.TimeUnit.SECONDS;

import java.lang.System;
import java.util.concurrent.TimeUnit;

class Util {
  public static long minutesToSeconds(long minutes) {
    System.gc();
    return SECONDS.convert(minutes, TimeUnit.MINUTES);
  }
}
`,
		},
		{
			name: "static import twice",
			build: func() *javafile.Builder {
				return javafile.NewBuilder("readme", minutesToSeconds("Util")).
					AddStaticImport(timeUnit, "SECONDS").
					AddStaticImport(timeUnit, "MINUTES")
			},
			expect: `package readme;

import static java.util.concurrent.TimeUnit.MINUTES;
import static java.util.concurrent.TimeUnit.SECONDS;

import java.lang.System;

class Util {
  public static long minutesToSeconds(long minutes) {
    System.gc();
    return SECONDS.convert(minutes, MINUTES);
  }
}
`,
		},
		{
			name: "static imports using wildcards",
			build: func() *javafile.Builder {
				return javafile.NewBuilder("readme", minutesToSeconds("Util")).
					AddStaticImport(timeUnit, types.AllMembers).
					AddStaticImport(system, types.AllMembers)
			},
			expect: `package readme;

import static java.lang.System.*;
import static java.util.concurrent.TimeUnit.*;

class Util {
  public static long minutesToSeconds(long minutes) {
    gc();
    return SECONDS.convert(minutes, MINUTES);
  }
}
`,
		},
		{
			name: "static imports mixed",
			build: func() *javafile.Builder {
				staticBlock, err := code.NewBuilder().
					AddStatement("assert $1T.valueOf(\"BLOCKED\") == $1T.BLOCKED", code.T(threadState)).
					AddStatement("$T.gc()", code.T(system)).
					AddStatement("$1T.out.println($1T.nanoTime())", code.T(system)).
					Build()
				if err != nil {
					panic(err)
				}
				constructor := decl.NewConstructor()
				constructor.Parameters = []decl.Parameter{decl.NewParameter(types.ArrayOf(threadState), "states")}
				constructor.Varargs = true
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").AddStaticBlock(staticBlock).AddMethod(constructor)).
					AddStaticImport(threadState, "BLOCKED").
					AddStaticImport(system, types.AllMembers).
					AddStaticImport(threadState, "valueOf")
			},
			expect: `package com.squareup.tacos;

import static java.lang.System.*;
import static java.lang.Thread.State.BLOCKED;
import static java.lang.Thread.State.valueOf;

import java.lang.Thread;

class Taco {
  static {
    assert valueOf("BLOCKED") == BLOCKED;
    gc();
    out.println(nanoTime());
  }

  Taco(Thread.State... states) {
  }
}
`,
		},
		{
			name: "same package first use wins",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").
					AddField(field(types.Get(tacosPackage, "Sauce"), "house")).
					AddField(field(types.Get("com.squareup.condiments", "Sauce"), "hot")))
			},
			expect: `package com.squareup.tacos;

class Taco {
  Sauce house;

  com.squareup.condiments.Sauce hot;
}
`,
		},
		{
			name: "foreign class used before same package class",
			build: func() *javafile.Builder {
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").
					AddField(field(types.Get("com.squareup.condiments", "Sauce"), "hot")).
					AddField(field(types.Get(tacosPackage, "Sauce"), "house")))
			},
			expect: `package com.squareup.tacos;

import com.squareup.condiments.Sauce;

class Taco {
  Sauce hot;

  com.squareup.tacos.Sauce house;
}
`,
		},
		{
			name: "indent and column limit",
			build: func() *javafile.Builder {
				method := decl.NewMethod("describe")
				method.Returns = types.String
				method.Body = statement("return $S +$W$S +$W$S", code.S("carnitas"), code.S("salsa"), code.S("lime"))
				return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").AddMethod(method)).
					Indent("    ").
					ColumnLimit(30)
			},
			expect: `package com.squareup.tacos;

import java.lang.String;

class Taco {
    String describe() {
        return "carnitas" +
                "salsa" +
                "lime";
    }
}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := tt.build().Build()
			require.NoError(t, err)
			actual, err := file.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.expect, actual)
			assert.NoError(t, java.NewInspector().Validate([]byte(actual)))
		})
	}
}

func TestFile_CrazyStaticFormats(t *testing.T) {
	runtime := types.MustGuess("java.lang.Runtime")
	staticBlock, err := code.NewBuilder().
		AddStatement("$T", code.T(runtime)).
		AddStatement("$T.a()", code.T(runtime)).
		AddStatement("$T.X", code.T(runtime)).
		AddStatement("$T$T", code.T(runtime), code.T(runtime)).
		AddStatement("$T.$T", code.T(runtime), code.T(runtime)).
		AddStatement("$1T$1T", code.T(runtime)).
		AddStatement("$1T$2L$1T", code.T(runtime), code.L("?")).
		AddStatement("$1T$2L$2S$1T", code.T(runtime), code.L("?")).
		AddStatement("$1T$2L$2S$1T$3N$1T", code.T(runtime), code.L("?"), code.N("method")).
		AddStatement("$T$L", code.T(runtime), code.L("?")).
		AddStatement("$T$S", code.T(runtime), code.S("?")).
		AddStatement("$T$N", code.T(runtime), code.N("method")).
		Build()
	require.NoError(t, err)
	file, err := javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").AddStaticBlock(staticBlock)).
		AddStaticImport(runtime, types.AllMembers).
		Build()
	require.NoError(t, err)
	actual, err := file.Render()
	require.NoError(t, err)
	assert.Equal(t, `package com.squareup.tacos;

import static java.lang.Runtime.*;

import java.lang.Runtime;

class Taco {
  static {
    Runtime;
    a();
    X;
    RuntimeRuntime;
    Runtime.Runtime;
    RuntimeRuntime;
    Runtime?Runtime;
    Runtime?"?"Runtime;
    Runtime?"?"RuntimemethodRuntime;
    Runtime?;
    Runtime"?";
    Runtimemethod;
  }
}
`, actual)
}

func TestFile_Deterministic(t *testing.T) {
	file, err := javafile.NewBuilder("readme", minutesToSeconds("Util")).AddStaticImport(timeUnit, "SECONDS").Build()
	require.NoError(t, err)
	first, err := file.Render()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := file.Render()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	fingerprint, err := file.Fingerprint()
	require.NoError(t, err)
	again, err := file.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fingerprint, again)

	var buffer bytes.Buffer
	n, err := file.WriteTo(&buffer)
	require.NoError(t, err)
	assert.Equal(t, int64(len(first)), n)
	assert.Equal(t, first, buffer.String())
	assert.Equal(t, first, file.String())
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func() *javafile.Builder
	}{
		{name: "static import without members", build: func() *javafile.Builder {
			return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco")).AddStaticImport(system)
		}},
		{name: "empty static member", build: func() *javafile.Builder {
			return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco")).AddStaticImport(system, "")
		}},
		{name: "invalid static member", build: func() *javafile.Builder {
			return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco")).AddStaticImport(system, "out.println")
		}},
		{name: "invalid comment", build: func() *javafile.Builder {
			return javafile.NewBuilder(tacosPackage, decl.NewClass("Taco")).AddFileComment("$L")
		}},
		{name: "no type", build: func() *javafile.Builder {
			return javafile.NewBuilder(tacosPackage, nil)
		}},
		{name: "invalid type", build: func() *javafile.Builder {
			return javafile.NewBuilder(tacosPackage, decl.NewInterface("Taco").AddMethod(decl.NewConstructor()))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Build()
			assert.Error(t, err)
		})
	}
}

func TestFile_RenderErrors(t *testing.T) {
	method := decl.NewMethod("eat")
	method.Body = code.MustOf("$]")
	file := &javafile.File{PackageName: tacosPackage, Type: decl.NewClass("Taco").AddMethod(method)}
	_, err := file.Render()
	require.Error(t, err)
	assert.True(t, code.IsFormatError(err))
	assert.Equal(t, "", file.String())
}

func TestFile_Path(t *testing.T) {
	file := &javafile.File{PackageName: tacosPackage, Type: decl.NewClass("Taco")}
	assert.Equal(t, "com/squareup/tacos/Taco.java", file.Path())
	assert.Equal(t, types.Get(tacosPackage, "Taco"), file.ClassName())
	file.PackageName = ""
	assert.Equal(t, "Taco.java", file.Path())
	file.PackageName = tacosPackage
	file.Type = nil
	assert.Equal(t, "com/squareup/tacos", file.Path())
	assert.Equal(t, "", (*javafile.File)(nil).Path())
}

func TestFile_Store(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	baseURL := "mem://localhost/javafile/src"
	file, err := javafile.NewBuilder(tacosPackage, decl.NewClass("Taco").AddField(field(utilDate, "madeFreshDate"))).Build()
	require.NoError(t, err)
	destURL, err := file.Store(ctx, fs, baseURL)
	require.NoError(t, err)
	assert.Equal(t, "mem://localhost/javafile/src/com/squareup/tacos/Taco.java", destURL)
	data, err := fs.DownloadWithURL(ctx, destURL)
	require.NoError(t, err)
	assert.Equal(t, file.String(), string(data))
}

func TestAssembler_Phases(t *testing.T) {
	var phases []javafile.Phase
	assembler := javafile.NewAssembler(javafile.WithPhaseListener(func(file *javafile.File, phase javafile.Phase) {
		assert.Equal(t, "Taco", file.Type.Name)
		phases = append(phases, phase)
	}))
	file, err := javafile.NewBuilder(tacosPackage, decl.NewClass("Taco")).Build()
	require.NoError(t, err)
	_, err = assembler.Assemble(file)
	require.NoError(t, err)
	assert.Equal(t, []javafile.Phase{javafile.Collecting, javafile.Resolving, javafile.Emitting, javafile.Done}, phases)
	assert.Equal(t, "resolving", javafile.Resolving.String())
}

func TestFile_InspectRendered(t *testing.T) {
	file, err := javafile.NewBuilder("readme", minutesToSeconds("Util").
		AddField(field(utilDate, "created")).
		AddField(field(sqlDate, "stored"))).
		AddStaticImport(timeUnit, "SECONDS").
		Build()
	require.NoError(t, err)
	text, err := file.Render()
	require.NoError(t, err)

	inspected, err := java.NewInspector().InspectSource([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, "readme", inspected.Package)
	assert.Equal(t, []string{
		"import static java.util.concurrent.TimeUnit.SECONDS",
		"import java.lang.System",
		"import java.util.Date",
		"import java.util.concurrent.TimeUnit",
	}, inspected.ImportPaths())
	util := inspected.LookupType("Util")
	require.NotNil(t, util)
	require.NotNil(t, util.LookupField("stored"))
	assert.Equal(t, "java.sql.Date", util.LookupField("stored").Type)
	assert.NotNil(t, util.LookupMethod("minutesToSeconds"))
}
