package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"

	"github.com/osse101/HabitInventory_Go/internal/logger"
)

// Fetch resolves src to a local catalog file. Existing local paths are used
// as is; anything else is handed to go-getter (https://, s3::, gcs::, git::)
// and written into dir.
func Fetch(ctx context.Context, src, dir string) (string, error) {
	log := logger.FromContext(ctx)

	if info, err := os.Stat(src); err == nil && !info.IsDir() {
		log.Info(LogMsgLocalCatalog, "path", src)
		return src, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf(ErrMsgCreateCatalogDir, err)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf(ErrMsgFetchCatalogFailed, src, err)
	}

	dst := filepath.Join(dir, FetchedFileName)
	if ext := filepath.Ext(src); isYAML(src) {
		dst = filepath.Join(dir, "eggs"+ext)
	}

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf(ErrMsgFetchCatalogFailed, src, err)
	}

	log.Info(LogMsgCatalogFetched, "source", src, "path", dst)
	return dst, nil
}
