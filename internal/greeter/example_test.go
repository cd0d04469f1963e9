package greeter

// ExampleGreet prints the greeting to standard output.
func ExampleGreet() {
	Greet("World")
	Greet("")
	// Output:
	// Hello from Python, World!
	// Hello from Python, !
}
