package hos

import "fmt"

func ExampleNewMapEnvFromEnvList() {
	env := NewMapEnvFromEnvList([]string{"A=B", "C=D", "E", "F=G=H"})

	fmt.Printf("Getenv(\"A\"): %q\n", env.Getenv("A"))
	fmt.Printf("Getenv(\"E\"): %q\n", env.Getenv("E"))
	fmt.Printf("Getenv(\"F\"): %q\n", env.Getenv("F"))

	// Output: Getenv("A"): "B"
	// Getenv("E"): ""
	// Getenv("F"): "G=H"
}

func ExampleMapEnv_Unsetenv() {
	env := NewMapEnv()
	env.Setenv("A", "B")
	env.Unsetenv("A")

	_, found := env.LookupEnv("A")
	fmt.Printf("found: %v\n", found)

	// Output: found: false
}
