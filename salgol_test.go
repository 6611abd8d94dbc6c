package salgol_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ava12/salgol"
	. "github.com/ava12/salgol/internal/test"
	"github.com/ava12/salgol/source"
)

func TestErrorMessage(t *testing.T) {
	e := salgol.NewError(salgol.ParseErrors, "unexpected )", "sample", 4, 2, 2)
	ExpectString(t, "unexpected ) in sample at line 2 col 2", e.Error())
	ExpectString(t, "unexpected )", e.Reason())

	e = salgol.NewError(salgol.ParseErrors, "unexpected )", "", 4, 2, 2)
	ExpectString(t, "unexpected ) at line 2 col 2", e.Message)

	e = salgol.FormatError(salgol.GrammarErrors, "unknown production %q", "seq")
	ExpectString(t, `unknown production "seq"`, e.Message)
	ExpectInt(t, -1, e.Offset)
	ExpectInt(t, 0, e.Line)

	ExpectString(t, "bare", (&salgol.Error{Message: "bare"}).Reason())
}

func TestRelocate(t *testing.T) {
	src := source.NewString("program", "ab\ncd")
	e := salgol.FormatErrorPos(source.NewString("full", "xyzab\ncd").Position(7), salgol.ParseErrors+2, "bad %s", "thing")
	ExpectString(t, "bad thing in full at line 2 col 2", e.Message)

	r := e.Relocate(src.Position(4))
	ExpectInt(t, salgol.ParseErrors+2, r.Code)
	ExpectString(t, "program", r.SourceName)
	ExpectInt(t, 4, r.Offset)
	ExpectInt(t, 2, r.Line)
	ExpectInt(t, 2, r.Col)
	ExpectString(t, "bad thing in program at line 2 col 2", r.Message)
	ExpectString(t, "bad thing", r.Reason())
	ExpectString(t, "full", e.SourceName)
}

func TestClass(t *testing.T) {
	samples := map[int]int{
		salgol.GrammarErrors:      salgol.GrammarErrors,
		salgol.GrammarErrors + 99: salgol.GrammarErrors,
		salgol.ParseErrors:        salgol.ParseErrors,
		salgol.ParseErrors + 5:    salgol.ParseErrors,
		salgol.AnalysisError:      salgol.AnalyzerErrors,
		salgol.UnsupportedError:   salgol.CodeGenErrors,
		salgol.CodeGenErrors + 98: salgol.CodeGenErrors,
	}
	for code, class := range samples {
		ExpectInt(t, class, (&salgol.Error{Code: code}).Class())
	}
}

func TestPredicates(t *testing.T) {
	parseError := fmt.Errorf("wrapped: %w", salgol.FormatError(salgol.ParseErrors+1, "oops"))
	ExpectBool(t, true, salgol.IsParseError(parseError))
	ExpectBool(t, false, salgol.IsGrammarError(parseError))

	ExpectBool(t, true, salgol.IsGrammarError(salgol.FormatError(salgol.GrammarErrors, "oops")))
	ExpectBool(t, true, salgol.IsAnalyzerError(salgol.NewAnalyzerError(3, "undeclared")))
	ExpectBool(t, true, salgol.IsUnsupportedError(salgol.NewUnsupportedError("raster")))
	ExpectString(t, "unsupported construct: raster", salgol.NewUnsupportedError("raster").Error())

	plain := errors.New("oops")
	ExpectBool(t, false, salgol.IsParseError(plain))
	ExpectBool(t, false, salgol.IsAnalyzerError(nil))
}
