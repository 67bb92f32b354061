// Command creational runs the pattern demos from the command line.
package main

func main() {
	Execute()
}
