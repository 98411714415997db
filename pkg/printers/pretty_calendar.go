package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/agenda"
)

// Month prints a compact month grid, bolding days that carry at least one
// agenda item. Used by the cal view.
func (pp *PrettyPrint) Month(on time.Time, items ...agenda.Item) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	days := DaysIn(then)

	count := make([]int, days)
	for _, item := range items {
		if item.Unscheduled {
			continue
		}
		at := item.At.Local()
		if at.Month() == then.Month() && at.Year() == then.Year() {
			count[at.Day()-1]++
		}
	}

	pp.printMonthCount(then, count)
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) printMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
