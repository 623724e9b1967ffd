// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package validation checks a user-authored Transparent component against
// a truth table by building a harness circuit (one Switch per input pin,
// one LED per output pin) around the component under test and driving it
// row by row.
package validation
