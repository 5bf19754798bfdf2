package cli

import "math/rand"

var apologies = []string{
	"I don't know how to do this :(. Sorry",
	"Hum... I forgot how to process this action",
	"OMG! I'm drunk!",
}

// Apologize returns a random apology for a failed dispatch.
func Apologize() string {
	return apologies[rand.Intn(len(apologies))]
}
