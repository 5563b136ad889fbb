package try

import (
	"errors"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Success(t *testing.T) {
	t.Parallel()

	res := Map(Success(21), func(v int) string { return strconv.Itoa(v * 2) })
	assert.Equal(t, Success("42"), res)
}

func TestMap_MatchesWith(t *testing.T) {
	t.Parallel()

	half := func(v int) int { return 10 / v }
	for _, v := range []int{1, 2, 5, 0} {
		mapped := Map(Success(v), half)
		direct := WithValue(func() int { return half(v) })

		require.Equal(t, direct.IsSuccess(), mapped.IsSuccess(), "v=%d", v)
		if direct.IsSuccess() {
			assert.Equal(t, direct, mapped)
			continue
		}
		var want, got runtime.Error
		require.ErrorAs(t, direct.Err(), &want)
		require.ErrorAs(t, mapped.Err(), &got)
		assert.Equal(t, want, got)
	}
}

func TestMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	oops := errors.New("oops")
	calls := 0
	res := Map(Failure[int](oops), func(v int) int {
		calls++
		return v + 1
	})

	assert.Zero(t, calls)
	assert.Same(t, oops, res.Err())
}

func TestTryMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Success(12), TryMap(Success("12"), strconv.Atoi))

	res := TryMap(Success("x"), strconv.Atoi)
	require.True(t, res.IsFailure())
	var numErr *strconv.NumError
	assert.ErrorAs(t, res.Err(), &numErr)

	oops := errors.New("oops")
	called := false
	res = TryMap(Failure[string](oops), func(s string) (int, error) {
		called = true
		return 0, nil
	})
	assert.False(t, called)
	assert.Same(t, oops, res.Err())
}

func TestFlatMap_Chaining(t *testing.T) {
	t.Parallel()

	twoOver := func(v int) Try[int] {
		return With(func() (int, error) { return 2 / v, nil })
	}

	assert.Equal(t, Success(2), FlatMap(Success(1), twoOver))

	res := FlatMap(Success(0), twoOver)
	require.True(t, res.IsFailure())
	var rtErr runtime.Error
	assert.ErrorAs(t, res.Err(), &rtErr)
}

func TestFlatMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	oops := errors.New("oops")
	called := false
	res := FlatMap(Failure[int](oops), func(v int) Try[int] {
		called = true
		return Success(2 / v)
	})

	assert.False(t, called)
	assert.Same(t, oops, res.ToFailure().Cause())
}

func TestFlatMap_ReturnsInnerFailure(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	res := FlatMap(Success(1), func(int) Try[string] { return Failure[string](inner) })
	assert.Same(t, inner, res.Err())
}

func TestFlatMap_PanicInFunctionIsCaptured(t *testing.T) {
	t.Parallel()

	var res Try[int]
	require.NotPanics(t, func() {
		res = FlatMap(Success(0), func(v int) Try[int] { return Success(2 / v) })
	})
	require.True(t, res.IsFailure())
	assert.True(t, IsPanic(res.Err()))
}

func TestRecover(t *testing.T) {
	t.Parallel()

	called := false
	ok := Success(5).Recover(func(error) int {
		called = true
		return -1
	})
	assert.False(t, called)
	assert.Equal(t, Success(5), ok)

	oops := errors.New("oops")
	var seen error
	rec := Failure[int](oops).Recover(func(c error) int {
		seen = c
		return -1
	})
	assert.Same(t, oops, seen)
	assert.Equal(t, Success(-1), rec)
}

func TestRecover_PanicPropagates(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "recover failed", func() {
		Failure[int](errors.New("oops")).Recover(func(error) int { panic("recover failed") })
	})
}

func TestRecoverWith(t *testing.T) {
	t.Parallel()

	other := errors.New("other")
	res := Failure[int](errors.New("oops")).RecoverWith(func(error) Try[int] { return Failure[int](other) })
	assert.Same(t, other, res.Err())

	assert.Equal(t, Success(1), Success(1).RecoverWith(func(error) Try[int] { return Success(2) }))
}

func TestFold(t *testing.T) {
	t.Parallel()

	describe := func(r Try[int]) string {
		return Fold(r,
			func(v int) string { return "ok:" + strconv.Itoa(v) },
			func(c error) string { return "err:" + c.Error() })
	}

	assert.Equal(t, "ok:3", describe(Success(3)))
	assert.Equal(t, "err:bad", describe(Failure[int](errors.New("bad"))))
}

type countingHandler struct {
	successes int
	failures  int
}

func (h *countingHandler) OnSuccess(s Succeeded[int]) string {
	h.successes++
	return strconv.Itoa(s.Value())
}

func (h *countingHandler) OnFailure(f Failed[int]) string {
	h.failures++
	return f.Error()
}

func TestDespatch(t *testing.T) {
	t.Parallel()

	h := &countingHandler{}
	assert.Equal(t, "7", Despatch[int, string](Success(7), h))
	assert.Equal(t, "no", Despatch[int, string](Failure[int](errors.New("no")), h))
	assert.Equal(t, 1, h.successes)
	assert.Equal(t, 1, h.failures)
}

func TestOnComplete(t *testing.T) {
	t.Parallel()

	var gotV int
	var gotErr error
	calls := 0
	Success(8).OnComplete(func(v int, cause error) {
		calls++
		gotV, gotErr = v, cause
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 8, gotV)
	assert.NoError(t, gotErr)

	oops := errors.New("oops")
	Failure[int](oops).OnComplete(func(v int, cause error) {
		calls++
		gotV, gotErr = v, cause
	})
	assert.Equal(t, 2, calls)
	assert.Zero(t, gotV)
	assert.Same(t, oops, gotErr)
}

func TestOnSuccessOnFailure(t *testing.T) {
	t.Parallel()

	var successes []int
	var failures []error
	oops := errors.New("oops")

	Success(1).
		OnSuccess(func(v int) { successes = append(successes, v) }).
		OnFailure(func(c error) { failures = append(failures, c) })
	Failure[int](oops).
		OnSuccess(func(v int) { successes = append(successes, v) }).
		OnFailure(func(c error) { failures = append(failures, c) })

	assert.Equal(t, []int{1}, successes)
	require.Len(t, failures, 1)
	assert.Same(t, oops, failures[0])
}
