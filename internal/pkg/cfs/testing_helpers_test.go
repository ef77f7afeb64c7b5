package cfs

// build returns an answer set from alternating field/value pairs.
func build(pairs ...string) Answers {
	a := Answers{}
	for i := 0; i+1 < len(pairs); i += 2 {
		a[Field(pairs[i])] = pairs[i+1]
	}
	return a
}

// with returns a copy of base extended with every field set to value.
func with(base Answers, value string, fields ...Field) Answers {
	out := base.Clone()
	for _, f := range fields {
		out[f] = value
	}
	return out
}

// notTerminal is the gate answered "no" with every BADLS, IADLS and chronic
// field independent or absent.
func notTerminal() Answers {
	a := build("terminally", "0")
	a = with(a, "0", BADLSFields...)
	a = with(a, "0", IADLSFields...)
	return with(a, "0", ChronicFields...)
}
