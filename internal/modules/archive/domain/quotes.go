package domain

import "math/rand"

// MotivationBank is the fixed pool of encouragement lines shown next
// to the personal motivation note.
var MotivationBank = []string{
	"A little every day beats a lot once in a while.",
	"Consistent matters more than perfect.",
	"One step today; tomorrow you will thank yourself.",
	"Big scores grow from small habits.",
	"Tired? Rest. Don't quit.",
	"Progress > excuses.",
	"Study smart: 45-60 minutes of focus, 5-10 minutes of break.",
	"You are competing with yesterday's you.",
	"One focused hour now saves a month of panic later.",
	"Start now, not later.",
}

// RandomQuote picks one line from the bank.
func RandomQuote(r *rand.Rand) string {
	return MotivationBank[r.Intn(len(MotivationBank))]
}
