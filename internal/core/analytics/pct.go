// Package analytics derives pipeline metrics from lead status histories.
// Every aggregator is a pure function of a lead snapshot: calling one twice
// on the same input yields identical output.
package analytics

import "fmt"

// Pct renders n/d as a percentage with exactly one decimal digit, rounding
// halves away from zero. A zero denominator always yields "0.0%".
func Pct(n, d int) string {
	if d == 0 {
		return "0.0%"
	}
	negative := (n < 0) != (d < 0)
	if n < 0 {
		n = -n
	}
	if d < 0 {
		d = -d
	}
	// Tenths of a percent in integer math; floats turn 6.25 into 6.2.
	tenths := (2000*n + d) / (2 * d)
	sign := ""
	if negative && tenths > 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%d%%", sign, tenths/10, tenths%10)
}
