package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve a generated project's files for inspection",
	Long: `Serve a generated project's files for inspection.

Starts a small HTTP server exposing the project manifest and its static
assets, without running the Node app itself:

  GET /        project summary
  GET /files   JSON manifest of the project's files
  GET /assets/ static files from the project's public directory

With --watch, file changes under src, views and public are logged as
they happen.

Example:
  panelctl preview --dir blog
  panelctl preview --dir blog --port 9000 --watch`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		port, _ := cmd.Flags().GetInt("port")
		watch, _ := cmd.Flags().GetBool("watch")

		if err := runPreview(dir, port, watch); err != nil {
			fmt.Fprintf(os.Stderr, "Preview server failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("dir", "d", ".", "Project directory")
	previewCmd.Flags().IntP("port", "p", 8080, "Port to serve on")
	previewCmd.Flags().Bool("watch", false, "Log file changes in the project")
}

type previewFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

func runPreview(dir string, port int, watch bool) error {
	if _, err := os.Stat(filepath.Join(dir, "package.json")); err != nil {
		return fmt.Errorf("%s does not look like a generated project: %w", dir, err)
	}

	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		files, err := listProjectFiles(dir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "Project: %s\nFiles:   %d\n\nSee /files for the manifest and /assets/ for public files.\n", dir, len(files))
	}).Methods("GET")

	r.HandleFunc("/files", func(w http.ResponseWriter, req *http.Request) {
		files, err := listProjectFiles(dir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(files)
	}).Methods("GET")

	publicDir := filepath.Join(dir, "public")
	r.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.Dir(publicDir))),
	)

	if watch {
		go watchProject(dir)
	}

	srv := &http.Server{
		Handler:      handlers.LoggingHandler(os.Stdout, r),
		Addr:         fmt.Sprintf("127.0.0.1:%d", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Previewing %s on http://%s", dir, srv.Addr)
	return srv.ListenAndServe()
}

// listProjectFiles walks the project, skipping dependency and VCS
// directories.
func listProjectFiles(dir string) ([]previewFile, error) {
	var files []previewFile
	err := fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" || d.Name() == ".git" {
				return fs.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, previewFile{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project: %w", err)
	}

	return files, nil
}

func watchProject(dir string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create watcher: %v\n", err)
		return
	}
	defer func() { _ = watcher.Close() }()

	for _, sub := range []string{"src", "src/routes", "src/middleware", "views", "public/css"} {
		path := filepath.Join(dir, sub)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := watcher.Add(path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch %s: %v\n", path, err)
		}
	}

	fmt.Printf("Watching %s for changes\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] %s changed\n", time.Now().Format(time.RFC3339), event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		}
	}
}
