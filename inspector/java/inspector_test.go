package java_test

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/javagen/inspector/java"
	"strings"
	"testing"
)

func TestInspector_InspectSource(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		wantPackage string
		wantImports []string
		wantTypes   []string
		wantErr     bool
	}{
		{
			name: "Simple class",
			source: `package com.example;
@SuppressWarnings("unused")
public class Person {
    private String name;
    private int age;

    public Person(String name, int age) {
        this.name = name;
        this.age = age;
    }

    public String getName() {
        return name;
    }
}`,
			wantPackage: "com.example",
			wantTypes:   []string{"Person"},
		},
		{
			name: "Static and wildcard imports",
			source: `package readme;

import static java.lang.System.*;
import static java.util.concurrent.TimeUnit.SECONDS;

import java.util.concurrent.TimeUnit;

class Util {
  public static long minutesToSeconds(long minutes) {
    gc();
    return SECONDS.convert(minutes, TimeUnit.MINUTES);
  }
}
`,
			wantPackage: "readme",
			wantImports: []string{
				"import static java.lang.System.*",
				"import static java.util.concurrent.TimeUnit.SECONDS",
				"import java.util.concurrent.TimeUnit",
			},
			wantTypes: []string{"Util"},
		},
		{
			name: "Enum",
			source: `package com.example.enums;

public enum Day {
    MONDAY, TUESDAY, WEDNESDAY
}`,
			wantPackage: "com.example.enums",
			wantTypes:   []string{"Day"},
		},
		{
			name:      "Default package",
			source:    "class HelloWorld {\n}\n",
			wantTypes: []string{"HelloWorld"},
		},
		{
			name:    "Missing brace",
			source:  "package com.example;\n\nclass Broken {\n  int x;\n",
			wantErr: true,
		},
		{
			name:    "Garbage statement",
			source:  "package com.example;\n\nclass Broken {\n  void run() {\n    int = ;\n  }\n}\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inspector := java.NewInspector()
			aFile, err := inspector.InspectSource([]byte(tt.source))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPackage, aFile.Package)
			if tt.wantImports != nil {
				assert.Equal(t, tt.wantImports, aFile.ImportPaths())
			}
			var names []string
			for _, typ := range aFile.Types {
				names = append(names, typ.Name)
			}
			assert.Equal(t, tt.wantTypes, names)
			assert.NotZero(t, aFile.Hash)
		})
	}
}

func TestInspector_Members(t *testing.T) {
	source := `package com.squareup.tacos;

import java.lang.Thread;

class A {
  static {
    System.gc();
  }

  Thread.State state;

  A(Thread.State... states) {
  }

  public static <T extends Comparable<T>> T max(T a, T b) throws Exception {
    return a;
  }

  class B {
    class Twin {
    }
  }

  interface Listener extends Runnable, AutoCloseable {
    int LIMIT = 1;

    void fire();
  }

  enum Roshambo {
    ROCK,

    PAPER;

    String label;
  }

  @interface Marker {
    String value() default "x";
  }
}
`
	aFile, err := java.NewInspector().InspectSource([]byte(source))
	require.NoError(t, err)

	a := aFile.LookupType("A")
	require.NotNil(t, a)
	assert.Equal(t, "class", a.Kind)
	require.NotNil(t, a.LookupField("state"))
	assert.Equal(t, "Thread.State", a.LookupField("state").Type)

	constructor := a.LookupMethod("A")
	require.NotNil(t, constructor)
	assert.True(t, constructor.Constructor)
	require.Len(t, constructor.Parameters, 1)
	assert.True(t, constructor.Parameters[0].Variadic)
	assert.Equal(t, "states", constructor.Parameters[0].Name)

	max := a.LookupMethod("max")
	require.NotNil(t, max)
	assert.Equal(t, "T", max.Result)
	assert.Equal(t, []string{"public", "static"}, max.Modifiers)
	assert.Equal(t, []string{"Exception"}, max.Throws)

	assert.NotNil(t, aFile.LookupType("A.B.Twin"))
	assert.Nil(t, aFile.LookupType("A.Twin"))

	listener := aFile.LookupType("A.Listener")
	require.NotNil(t, listener)
	assert.Equal(t, "interface", listener.Kind)
	assert.Equal(t, []string{"Runnable", "AutoCloseable"}, listener.Extends)
	assert.NotNil(t, listener.LookupField("LIMIT"))

	roshambo := aFile.LookupType("A.Roshambo")
	require.NotNil(t, roshambo)
	assert.Equal(t, []string{"ROCK", "PAPER"}, roshambo.Constants)
	assert.NotNil(t, roshambo.LookupField("label"))

	marker := aFile.LookupType("A.Marker")
	require.NotNil(t, marker)
	assert.Equal(t, "annotation", marker.Kind)
	assert.NotNil(t, marker.LookupMethod("value"))
}

func TestInspector_Validate(t *testing.T) {
	inspector := java.NewInspector()
	assert.NoError(t, inspector.Validate([]byte("class Taco {\n}\n")))

	err := inspector.Validate([]byte("class Taco {\n  int x\n}\n"))
	require.Error(t, err)
	var syntaxErr *java.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.NotEmpty(t, syntaxErr.Problems)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid java source"))
}

func TestInspector_InspectURL(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/inspector/com/squareup/tacos/Taco.java"
	source := "package com.squareup.tacos;\n\nimport java.util.Date;\n\nclass Taco {\n  Date madeFreshDate;\n}\n"
	require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(source)))

	aFile, err := java.NewInspector().InspectURL(ctx, fs, URL)
	require.NoError(t, err)
	assert.Equal(t, URL, aFile.Path)
	assert.Equal(t, "com.squareup.tacos", aFile.Package)
	assert.Equal(t, []string{"import java.util.Date"}, aFile.ImportPaths())
	assert.Equal(t, "Date", aFile.LookupType("Taco").LookupField("madeFreshDate").Type)
}
