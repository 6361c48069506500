// Command uiwctl replays scripted user input against the headless slider
// and text input controls and prints every intermediate state.
package main

func main() {
	Execute()
}
