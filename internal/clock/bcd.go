package clock

// The DS3231 stores every field as packed BCD.

func bcdToDec(b byte) int {
	return int(b>>4)*10 + int(b&0x0F)
}

func decToBCD(v int) byte {
	return byte(v/10)<<4 | byte(v%10)
}
