package rules

import (
	"github.com/donaldgifford/wordarray/internal/advisor"
	"github.com/donaldgifford/wordarray/internal/linter"
	"github.com/donaldgifford/wordarray/internal/rules/style"
)

func init() {
	Register(func(adv *advisor.Advisor) linter.Rule {
		return style.NewWordArray(adv)
	})
}
