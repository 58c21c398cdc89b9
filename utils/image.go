package utils

import (
	"github.com/disintegration/imaging"
)

// MakeProfileThumbnail crops srcPath to a 200x200 square and writes it to
// destPath as a JPEG. destPath must end in .jpg for the encoder to pick the
// right format.
func MakeProfileThumbnail(srcPath, destPath string) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return err
	}
	thumb := imaging.Fill(img, 200, 200, imaging.Center, imaging.Lanczos)
	return imaging.Save(thumb, destPath, imaging.JPEGQuality(80))
}
