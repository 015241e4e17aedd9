// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/await"
)

// stubResumable scripts Resume/Abort behavior for driver tests that need
// a computation outside the Coroutine implementation.
type stubResumable struct {
	resume func(v any) (await.Step, error)
	abort  func(err error) (await.Step, error)
}

func (s *stubResumable) Resume(v any) (await.Step, error)    { return s.resume(v) }
func (s *stubResumable) Abort(err error) (await.Step, error) { return s.abort(err) }

func TestDriveResumableSynchronousSteps(t *testing.T) {
	var resumed []any
	c := await.NewCoroutine(func(yield await.Yield) (any, error) {
		for _, s := range []string{"a", "b"} {
			v, err := yield(s)
			if err != nil {
				return nil, err
			}
			resumed = append(resumed, v)
		}
		return "c", nil
	})

	fut := await.DriveResumable(c)

	v, err, settled := fut.TryResult()
	require.True(t, settled, "plain-value suspend points must complete without wait")
	require.NoError(t, err)
	require.Equal(t, "c", v)
	require.Equal(t, []any{"a", "b"}, resumed, "each resume receives the previous step's value")
}

func TestDriveResumablePendingSequence(t *testing.T) {
	f1 := await.New[any]()
	f2 := await.New[any]()
	f3 := await.New[any]()

	var received []any
	c := await.NewCoroutine(func(yield await.Yield) (any, error) {
		for _, f := range []*await.Future[any]{f1, f2, f3} {
			v, err := yield(f)
			if err != nil {
				return nil, err
			}
			received = append(received, v)
		}
		return received, nil
	})

	fut := await.DriveResumable(c)
	require.Equal(t, await.StatePending, fut.State())

	f1.Fulfill("v1")
	require.Equal(t, []any{"v1"}, received)
	require.Equal(t, await.StatePending, fut.State())

	f2.Fulfill("v2")
	require.Equal(t, []any{"v1", "v2"}, received)

	f3.Fulfill("v3")
	v, err := fut.Result()
	require.NoError(t, err)
	require.Equal(t, []any{"v1", "v2", "v3"}, v)
}

func TestDriveResumableRejectionStopsDriving(t *testing.T) {
	boom := errors.New("boom")
	f1 := await.New[any]()
	f2 := await.New[any]()

	resumes := 0
	c := await.NewCoroutine(func(yield await.Yield) (any, error) {
		if _, err := yield(f1); err != nil {
			return nil, err
		}
		resumes++
		if _, err := yield(f2); err != nil {
			return nil, err
		}
		resumes++
		return "unreached", nil
	})

	fut := await.DriveResumable(c)

	f1.Fulfill("v1")
	f2.Reject(boom)

	_, err := fut.Result()
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, resumes, "no resume may occur past the rejected step")
}

func TestDriveResumableRejectionRecovered(t *testing.T) {
	boom := errors.New("boom")

	c := await.NewCoroutine(func(yield await.Yield) (any, error) {
		_, err := yield(await.Rejected[any](boom))
		if err != nil {
			return "recovered", nil
		}
		return "unreached", nil
	})

	v, err := await.DriveResumable(c).Result()
	require.NoError(t, err)
	require.Equal(t, "recovered", v)
}

func TestDriveResumableTerminalAwaitableFulfills(t *testing.T) {
	c := await.NewCoroutine(func(yield await.Yield) (any, error) {
		return await.Resolved[any]("x"), nil
	})

	v, err := await.DriveResumable(c).Result()
	require.NoError(t, err)
	require.Equal(t, "x", v, "terminal awaitable must be awaited like a per-step value")
}

func TestDriveResumableTerminalAwaitableRejects(t *testing.T) {
	boom := errors.New("boom")
	c := await.NewCoroutine(func(yield await.Yield) (any, error) {
		return await.Rejected[any](boom), nil
	})

	_, err := await.DriveResumable(c).Result()
	require.ErrorIs(t, err, boom)
}

func TestDriveResumableTerminalPendingAwaitable(t *testing.T) {
	late := await.New[any]()
	c := await.NewCoroutine(func(yield await.Yield) (any, error) {
		return late, nil
	})

	fut := await.DriveResumable(c)
	require.Equal(t, await.StatePending, fut.State())

	late.Fulfill(9)
	v, err := fut.Result()
	require.NoError(t, err)
	require.Equal(t, 9, v)
}

func TestDriveResumableNeverSettles(t *testing.T) {
	c := await.NewCoroutine(func(yield await.Yield) (any, error) {
		v, err := yield(await.New[any]())
		return v, err
	})

	fut := await.DriveResumable(c)

	select {
	case <-fut.Done():
		t.Fatal("future settled despite unsettled awaitable")
	case <-time.After(20 * time.Millisecond):
	}
	require.Equal(t, await.StatePending, fut.State())
}

func TestDriveResumableResumeError(t *testing.T) {
	boom := errors.New("boom")
	s := &stubResumable{
		resume: func(v any) (await.Step, error) { return await.Step{}, boom },
	}

	_, err := await.DriveResumable(s).Result()
	require.ErrorIs(t, err, boom)
}

func TestDriveResumableBodyPanicRejects(t *testing.T) {
	boom := errors.New("boom")
	c := await.NewCoroutine(func(yield await.Yield) (any, error) {
		if _, err := yield(1); err != nil {
			return nil, err
		}
		panic(boom)
	})

	_, err := await.DriveResumable(c).Result()
	require.ErrorIs(t, err, boom)
}

func TestDriveResumableAsynchronousSettlement(t *testing.T) {
	f := await.New[any]()
	c := await.NewCoroutine(func(yield await.Yield) (any, error) {
		v, err := yield(f)
		if err != nil {
			return nil, err
		}
		return v.(int) + 1, nil
	})

	fut := await.DriveResumable(c)
	go f.Fulfill(41)

	v, err := fut.Result()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}
