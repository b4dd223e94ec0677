// File: example_test.go
// Title: Example Tests for String View Package Documentation
// Description: Executable examples showing typical view usage.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-21
// Modified: 2026-10-04
//
// Change History:
// - 2026-09-21 v0.1.0: Initial example implementation
// - 2026-10-04 v0.2.0: Iterator example

package strview_test

import (
	"fmt"
	"slices"

	mdwstrview "github.com/msto63/strview/foundation/utils/strview"
)

func ExampleFromString() {
	v := mdwstrview.FromString("ExampleSV")
	fmt.Println(v.Size(), v.Empty())
	fmt.Println(v.Front() == 'E', v.Back() == 'V')
	// Output:
	// 9 false
	// true true
}

func ExampleView_Substr() {
	v := mdwstrview.FromString("Hello, World")
	world, _ := v.Substr(7, mdwstrview.NPos)
	fmt.Println(world)

	_, err := v.Substr(20, 1)
	fmt.Println(mdwstrview.IsOutOfRange(err))
	// Output:
	// World
	// true
}

func ExampleView_At() {
	v := mdwstrview.FromString("Hello")
	if _, err := v.At(5); err != nil {
		fmt.Println(err)
	}
	// Output:
	// value 5 out of range [0, 4] in strview.at
}

func ExampleView_Find() {
	v := mdwstrview.FromString("Hello")
	fmt.Println(v.Find(mdwstrview.FromString("lo"), 0))
	fmt.Println(v.Find(mdwstrview.FromString("z"), 0) == mdwstrview.NPos)
	// Output:
	// 3
	// true
}

func ExampleView_FindFirstNotOf() {
	v := mdwstrview.FromString("  hi  ")
	start := v.FindFirstNotOf(mdwstrview.FromString(" "), 0)
	end := v.FindLastNotOf(mdwstrview.FromString(" "), mdwstrview.NPos)
	trimmed, _ := v.Substr(start, end-start+1)
	fmt.Printf("%q\n", trimmed)
	// Output:
	// "hi"
}

func ExampleView_RemovePrefix() {
	v := mdwstrview.FromString("https://example.com")
	if v.StartsWith(mdwstrview.FromString("https://")) {
		v.RemovePrefix(len("https://"))
	}
	fmt.Println(v)
	// Output:
	// example.com
}

func ExampleCompare() {
	views := []mdwstrview.StrView{
		mdwstrview.FromString("pear"),
		mdwstrview.FromString("apple"),
		mdwstrview.FromString("app"),
	}
	slices.SortFunc(views, mdwstrview.Compare[byte])
	fmt.Println(views)
	// Output:
	// [app apple pear]
}

func ExampleFromSlice() {
	units := []uint16{'w', 'i', 'd', 'e', 0}
	v := mdwstrview.FromTerminated(&units[0])
	fmt.Println(v.Size(), v.EndsWithChar('e'))

	runes := mdwstrview.FromSlice([]rune("grüße"))
	fmt.Println(runes.FindChar('ß', 0))
	// Output:
	// 4 true
	// 3
}

func ExampleView_Backward() {
	v := mdwstrview.FromString("abc")
	for i, c := range v.Backward() {
		fmt.Print(i, string(rune(c)), " ")
	}
	fmt.Println()
	// Output:
	// 2c 1b 0a
}
