package future

// Then returns a Future of next applied to the value of f. If f faults, the
// fault is carried over and next is not called.
func Then[T, U any](f *Future[T], next func(T) U) *Future[U] {
	if f == nil {
		panic(ErrNilFuture)
	}

	return Go(func() U {
		return next(f.Await())
	})
}

// FlatThen is Then for a continuation that returns a Future itself.
func FlatThen[T, U any](f *Future[T], next func(T) *Future[U]) *Future[U] {
	if f == nil {
		panic(ErrNilFuture)
	}

	return Go(func() U {
		return next(f.Await()).Await()
	})
}
