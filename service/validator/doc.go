// Package validator decides whether a string is a canonical random (version 4)
// identifier: five lowercase hex groups of 8-4-4-4-12 digits, version digit 4
// and a variant digit in {8,9,a,b}. Uppercase input is rejected.
//
// Three interchangeable Matcher strategies are provided. Positional is the
// default and does not allocate; Pattern uses the anchored regular expression
// from the format package; Parser runs a parsly token grammar, which is also
// what Parse uses to report the failing group and offset.
package validator
