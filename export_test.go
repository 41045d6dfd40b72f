package linked

func CheckSingle(ls *Single) error {
	return ls.check()
}

func CheckDouble(ls *Double) error {
	return ls.check()
}
