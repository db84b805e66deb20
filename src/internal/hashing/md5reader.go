package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
)

// MD5Reader calculates the MD5 checksum of data as it's read.
type MD5Reader struct {
	reader   io.Reader
	checksum hash.Hash
	size     int64
}

func NewMD5Reader(reader io.Reader) *MD5Reader {
	return &MD5Reader{
		reader:   reader,
		checksum: md5.New(),
	}
}

func (p *MD5Reader) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		// hash.Hash.Write never returns an error
		p.checksum.Write(buf[:n])
		p.size += int64(n)
	}
	return n, err
}

// Checksum returns the hex MD5 of everything read so far.
func (p *MD5Reader) Checksum() string {
	return hex.EncodeToString(p.checksum.Sum(nil))
}

// Size returns the number of bytes read so far.
func (p *MD5Reader) Size() int64 {
	return p.size
}
