package colours

// Names of the achromatic buckets.
const (
	BucketWhite = "white"
	BucketGrey  = "grey"
	BucketBlack = "black"
)

// Classification is a sample's HSB colour and the bucket it was assigned to.
// Bucket is empty when no bucket matched.
type Classification struct {
	Bucket string
	Colour HSBColour
}

// Classified reports whether the sample was assigned to a bucket.
func (c Classification) Classified() bool {
	return c.Bucket != ""
}

// Classify converts rgb to HSB and assigns it to a bucket.
//
// White, grey and black are tested first, in that order, using the black and
// white thresholds. Otherwise the first entry of hues whose intervals contain
// the sample's hue wins. If none does, the result is unclassified.
func Classify(rgb RGB, hues []HueRange, blackThreshold, whiteThreshold float64) Classification {
	c := rgb.HSB()
	return Classification{Bucket: bucketFor(c, hues, blackThreshold, whiteThreshold), Colour: c}
}

func bucketFor(c HSBColour, hues []HueRange, black, white float64) string {
	switch {
	case c.Saturation <= white && c.Brightness >= 1-white:
		return BucketWhite
	case c.Hue <= black && c.Saturation <= white && c.Brightness > black && c.Brightness < 1-white:
		return BucketGrey
	case c.Brightness <= black:
		return BucketBlack
	}
	for _, h := range hues {
		if h.Matches(c.Hue) {
			return h.Name
		}
	}
	return ""
}
