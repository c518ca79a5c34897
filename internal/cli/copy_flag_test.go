package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestInterpretCopyFlagLiteral(testInstance *testing.T) {
	testCases := []struct {
		input         string
		expectedValue bool
		expectedOk    bool
	}{
		{input: "", expectedValue: true, expectedOk: true},
		{input: "true", expectedValue: true, expectedOk: true},
		{input: "YES", expectedValue: true, expectedOk: true},
		{input: " 1 ", expectedValue: true, expectedOk: true},
		{input: "false", expectedValue: false, expectedOk: true},
		{input: "No", expectedValue: false, expectedOk: true},
		{input: "0", expectedValue: false, expectedOk: true},
		{input: "maybe", expectedOk: false},
	}

	for _, testCase := range testCases {
		actualValue, actualOk := interpretCopyFlagLiteral(testCase.input)
		if actualOk != testCase.expectedOk || actualValue != testCase.expectedValue {
			testInstance.Fatalf("interpretCopyFlagLiteral(%q): expected (%v, %v), received (%v, %v)",
				testCase.input, testCase.expectedValue, testCase.expectedOk, actualValue, actualOk)
		}
	}
}

func TestRegisterCopyFlag(testInstance *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var copyRequested bool
	registerCopyFlag(flagSet, &copyRequested)

	registeredFlag := flagSet.Lookup(copyFlagName)
	if registeredFlag == nil {
		testInstance.Fatalf("expected the copy flag to be registered")
	}
	if registeredFlag.NoOptDefVal != "true" {
		testInstance.Fatalf("expected a bare --copy to mean true, received %q", registeredFlag.NoOptDefVal)
	}

	if parseError := flagSet.Parse([]string{"--copy"}); parseError != nil {
		testInstance.Fatalf("unexpected parse error: %v", parseError)
	}
	if !copyRequested {
		testInstance.Fatalf("expected a bare --copy to enable copying")
	}

	if setError := flagSet.Set(copyFlagName, "false"); setError != nil {
		testInstance.Fatalf("unexpected set error: %v", setError)
	}
	if copyRequested {
		testInstance.Fatalf("expected --copy=false to disable copying")
	}

	if setError := flagSet.Set(copyFlagName, "sideways"); setError == nil {
		testInstance.Fatalf("expected an invalid literal to be rejected")
	}
}
