// Command yus-demo derives a keystream from a key and nonce and prints it
// as hex, one field element per line.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"yuscipher/cipher"
	"yuscipher/config"
	"yuscipher/field"
)

func main() {
	paramsPath := flag.String("params", "", "JSON params file (p/level/m); falls back to -p/-level/-m if empty")
	pFlag := flag.Uint64("p", 65579, "prime modulus, p ≡ 2 mod 3 and p > 2^16")
	levelFlag := flag.Int("level", 5, "security level: 5 (80-bit) or 6 (128-bit)")
	mFlag := flag.Int("m", 12, "truncation width m in [0,36]")
	keyHex := flag.String("key", "", "36 field elements as hex-encoded 8-byte big-endian limbs (random if empty)")
	nonceHex := flag.String("nonce", "", "nonce as hex (random 16 bytes if empty)")
	blocks := flag.Int("blocks", 1, "number of keystream blocks to generate")
	flag.Parse()

	var c *cipher.Cipher
	var p uint64
	if *paramsPath != "" {
		params, err := config.LoadFromFile(*paramsPath)
		if err != nil {
			log.Fatal(err)
		}
		c, err = params.NewCipher()
		if err != nil {
			log.Fatal(err)
		}
		p = params.P
	} else {
		var err error
		c, err = cipher.New(*pFlag, cipher.SecurityLevel(*levelFlag), *mFlag)
		if err != nil {
			log.Fatal(err)
		}
		p = *pFlag
	}

	key, err := loadOrRandomKey(*keyHex, p)
	if err != nil {
		log.Fatal(err)
	}
	nonce, err := loadOrRandomNonce(*nonceHex)
	if err != nil {
		log.Fatal(err)
	}

	if err := c.Init(key, nonce); err != nil {
		log.Fatal(err)
	}

	ks, err := c.GenerateKeystream(*blocks)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "nonce: %s\n", hex.EncodeToString(nonce))
	for _, v := range ks {
		fmt.Println(hex.EncodeToString(field.BytesFromElem(v)))
	}
}

func loadOrRandomKey(s string, p uint64) ([]field.Elem, error) {
	f := field.New(p)
	if s == "" {
		key := make([]field.Elem, 36)
		buf := make([]byte, 8)
		for i := range key {
			if _, err := rand.Read(buf); err != nil {
				return nil, fmt.Errorf("yus-demo: random key: %w", err)
			}
			var limb [8]byte
			copy(limb[:], buf)
			key[i] = f.ElemFromBytes8(limb)
		}
		return key, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 36 {
		return nil, fmt.Errorf("yus-demo: -key must have 36 comma-separated hex limbs, got %d", len(parts))
	}
	key := make([]field.Elem, 36)
	for i, part := range parts {
		b, err := hex.DecodeString(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("yus-demo: decode key[%d]: %w", i, err)
		}
		key[i] = f.ElemFromBytes(b)
	}
	return key, nil
}

func loadOrRandomNonce(s string) ([]byte, error) {
	if s == "" {
		nonce := make([]byte, 16)
		if _, err := rand.Read(nonce); err != nil {
			return nil, fmt.Errorf("yus-demo: random nonce: %w", err)
		}
		return nonce, nil
	}
	return hex.DecodeString(s)
}
