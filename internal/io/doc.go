// Package ioutils provides file system and image processing utilities.
//
// This package contains:
//   - A small on-disk cache for downloaded cover images
//   - Directory creation
//   - Image resizing and format conversion
//   - Rendering images as terminal thumbnails
//
// # Cover Cache
//
//	cache := ioutils.NewCache(dir)
//	data, ok := cache.Read(ctx, album.CoverFileName())
//	err := cache.Write(ctx, album.CoverFileName(), data)
//
// # Image Processing
//
// The ImageService handles cover manipulation:
//
//	svc := ioutils.NewImageService()
//
//	// Resize image to fit within 500x500
//	resized, _ := svc.ResizeImage(ctx, imageData, 500, 500)
//
//	// Render as a 16x6 cell block of half-block characters
//	thumb, _ := svc.RenderThumbnail(ctx, imageData, 16, 6)
package ioutils
