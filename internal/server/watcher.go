package server

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/BuyMeAnIcecream/a-journey-in-the-dark/pkg/logger"
)

// Окно, в котором события файла считаются эхом собственного Save
// (tmp+rename тоже будит fsnotify), а не внешней правкой.
const ownSaveWindow = time.Second

// ContentWatcher следит за документом контента на диске: правка внешним
// инструментом или игровым сервером приводит к перезагрузке стора и
// рассылке события подписчикам.
type ContentWatcher struct {
	watcher *fsnotify.Watcher
	service *Service
	path    string
	closeCh chan struct{}
}

// WatchContent вешает fsnotify на каталог файла (сам файл при atomic rename
// меняет inode, каталог - нет).
func WatchContent(service *Service, path string) (*ContentWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	cw := &ContentWatcher{
		watcher: w,
		service: service,
		path:    filepath.Clean(path),
		closeCh: make(chan struct{}),
	}
	go cw.run()

	logger.Log.WithField("path", path).Info("Watching content document for external changes")
	return cw, nil
}

func (cw *ContentWatcher) Close() error {
	close(cw.closeCh)
	return cw.watcher.Close()
}

func (cw *ContentWatcher) run() {
	// Редакторы пишут файлы сериями событий - дребезг гасим по времени
	var lastReload time.Time

	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			// Собственная запись: стор уже актуален, перечитывать нечего
			if cw.service.RecentlySaved(ownSaveWindow) {
				logger.Log.Debug("Skipping reload triggered by own save")
				continue
			}
			if time.Since(lastReload) < 200*time.Millisecond {
				continue
			}
			lastReload = time.Now()

			logger.Log.WithField("path", cw.path).Info("Content document changed on disk, reloading")
			if err := cw.service.ReloadFromDisk(); err != nil {
				logger.Log.WithError(err).Error("Content reload failed, keeping previous state")
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			logger.Log.WithError(err).Warn("fsnotify error")

		case <-cw.closeCh:
			return
		}
	}
}
