package imports

import (
	"github.com/viant/javagen/types"
)

// ImplicitPackage is the package whose types are visible without an import.
const ImplicitPackage = "java.lang"

var implicitNamespace = newImplicitNamespace(
	"AbstractMethodError", "Appendable", "ArithmeticException", "ArrayIndexOutOfBoundsException",
	"ArrayStoreException", "AssertionError", "AutoCloseable", "Boolean", "BootstrapMethodError",
	"Byte", "Character", "CharSequence", "Class", "ClassCastException", "ClassCircularityError",
	"ClassFormatError", "ClassLoader", "ClassNotFoundException", "ClassValue",
	"CloneNotSupportedException", "Cloneable", "Comparable", "Compiler", "Deprecated", "Double",
	"Enum", "EnumConstantNotPresentException", "Error", "Exception", "ExceptionInInitializerError",
	"Float", "FunctionalInterface", "IllegalAccessError", "IllegalAccessException",
	"IllegalArgumentException", "IllegalCallerException", "IllegalMonitorStateException",
	"IllegalStateException", "IllegalThreadStateException", "IncompatibleClassChangeError",
	"IndexOutOfBoundsException", "InheritableThreadLocal", "InstantiationError",
	"InstantiationException", "Integer", "InternalError", "InterruptedException", "Iterable",
	"LayerInstantiationException", "LinkageError", "Long", "MatchException", "Math", "Module",
	"ModuleLayer", "NegativeArraySizeException", "NoClassDefFoundError", "NoSuchFieldError",
	"NoSuchFieldException", "NoSuchMethodError", "NoSuchMethodException", "NullPointerException",
	"Number", "NumberFormatException", "Object", "OutOfMemoryError", "Override", "Package",
	"Process", "ProcessBuilder", "ProcessHandle", "Readable", "Record",
	"ReflectiveOperationException", "Runnable", "Runtime", "RuntimeException",
	"RuntimePermission", "SafeVarargs", "ScopedValue", "SecurityException", "SecurityManager",
	"Short", "StackOverflowError", "StackTraceElement", "StackWalker", "StrictMath", "String",
	"StringBuffer", "StringBuilder", "StringIndexOutOfBoundsException", "StringTemplate",
	"SuppressWarnings", "System", "Thread", "ThreadDeath", "ThreadGroup", "ThreadLocal",
	"Throwable", "TypeNotPresentException", "UnknownError", "UnsatisfiedLinkError",
	"UnsupportedClassVersionError", "UnsupportedOperationException", "VerifyError",
	"VirtualMachineError", "Void", "WrongThreadException",
)

func newImplicitNamespace(simpleNames ...string) map[string]bool {
	ret := make(map[string]bool, len(simpleNames))
	for _, name := range simpleNames {
		ret[ImplicitPackage+"."+name] = true
	}
	return ret
}

// IsImplicit reports whether the top-level class of className is always visible without an
// import statement.
func IsImplicit(className types.ClassName) bool {
	return implicitNamespace[className.TopLevel().CanonicalName()]
}
