// Package masks formats Brazilian documents, phone numbers and currency.
// Values are stored raw; these helpers derive the display form on demand.
package masks

import (
	"fmt"
	"strings"
)

func onlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// applyPattern fills '#' slots with digits and emits literal separators
// only while digits remain. Digits beyond the pattern are discarded.
func applyPattern(digits string, pattern string) string {
	var b strings.Builder
	i := 0
	for _, r := range pattern {
		if i >= len(digits) {
			break
		}
		if r == '#' {
			b.WriteByte(digits[i])
			i++
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskCEP formats a postal code as 00000-000.
func MaskCEP(value string) string {
	return applyPattern(onlyDigits(value), "#####-###")
}

// MaskCPF formats a CPF as 000.000.000-00.
func MaskCPF(value string) string {
	return applyPattern(onlyDigits(value), "###.###.###-##")
}

// MaskCNPJ formats a CNPJ as 00.000.000/0000-00.
func MaskCNPJ(value string) string {
	return applyPattern(onlyDigits(value), "##.###.###/####-##")
}

// MaskPhone formats a phone as (00) 0000-0000 or (00) 00000-0000 for
// mobile numbers.
func MaskPhone(value string) string {
	digits := onlyDigits(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	if len(digits) > 10 {
		return applyPattern(digits, "(##) #####-####")
	}
	return applyPattern(digits, "(##) ####-####")
}

// MaskRG formats an RG as 00.000.000-0.
func MaskRG(value string) string {
	return applyPattern(onlyDigits(value), "##.###.###-#")
}

// MaskCurrency interprets the digits of the input as cents and renders
// them as BRL, matching the admin forms' input masking.
func MaskCurrency(value string) string {
	digits := onlyDigits(value)
	cents := int64(0)
	for i := 0; i < len(digits); i++ {
		cents = cents*10 + int64(digits[i]-'0')
	}
	return FormatCurrency(float64(cents) / 100)
}

// FormatCurrency renders a value as pt-BR currency: R$ 1.234,56.
func FormatCurrency(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}
	cents := int64(value*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}

// iePatterns holds the state-registration format per UF. BA switches on
// length and is handled separately.
var iePatterns = map[string]string{
	"AC": "##.###.###/###-##",
	"AL": "##.###.###-#",
	"AP": "##.###.###-#",
	"AM": "##.###.###-#",
	"CE": "########-#",
	"DF": "###.#####.###-##",
	"ES": "########-#",
	"GO": "##.###.###-#",
	"MA": "##.###.###-#",
	"MT": "##########-#",
	"MS": "##.###.###-#",
	"MG": "###.###.###/####",
	"PA": "##-######-#",
	"PB": "########-#",
	"PR": "###.#####-##",
	"PE": "#######-##",
	"PI": "########-#",
	"RJ": "##.###.##-#",
	"RN": "##.###.###-#",
	"RS": "###/#######",
	"RO": "#############",
	"RR": "##.###.###-#",
	"SC": "###.###.###",
	"SP": "###.###.###.###",
	"SE": "########-#",
	"TO": "##.###.###-#",
}

// MaskIE formats a state registration number according to the UF's
// pattern. Unknown UFs (or blank) return the bare digits.
func MaskIE(value string, uf string) string {
	digits := onlyDigits(value)
	state := strings.ToUpper(strings.TrimSpace(uf))
	if state == "" {
		return digits
	}
	if state == "BA" {
		if len(digits) == 8 {
			return applyPattern(digits, "######-##")
		}
		return applyPattern(digits, "#######-##")
	}
	pattern, ok := iePatterns[state]
	if !ok {
		return digits
	}
	return applyPattern(digits, pattern)
}
