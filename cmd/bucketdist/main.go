package main

import (
	"context"

	"github.com/Blackdeer1524/BucketDist/cmd/bucketdist/app"
)

func main() {
	app.MustExecute(context.Background())
}
